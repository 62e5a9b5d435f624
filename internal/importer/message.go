package importer

import (
	"encoding/json"

	"github.com/mateusmacedo/go-companies/internal/company/application"
)

// QueueName é a fila durável de importação de empresas. A declaração é
// idempotente: produtor e consumidor podem declará-la repetidamente.
const QueueName = "import-companies-queue"

// EncodeCommand serializa o comando de importação no formato de fio da fila
// (JSON UTF-8).
func EncodeCommand(command application.CreateCompanyData) ([]byte, error) {
	return json.Marshal(command)
}

// DecodeCommand reconstrói o comando a partir do payload da mensagem.
func DecodeCommand(payload []byte) (application.CreateCompanyData, error) {
	var command application.CreateCompanyData
	err := json.Unmarshal(payload, &command)
	return command, err
}
