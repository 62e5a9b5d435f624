package domain

// Notification representa uma violação de regra de negócio ou de validação.
// Comparável por valor para permitir asserções com Contains.
type Notification struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// NewNotification cria uma nova notificação.
func NewNotification(key, message string) Notification {
	return Notification{Key: key, Message: message}
}

// Result é o retorno uniforme dos manipuladores de comando: ou um payload de
// sucesso, ou uma lista ordenada de notificações. Falhas de negócio nunca
// viajam como error; error fica reservado para falhas de infraestrutura.
type Result[T any] struct {
	Data          T              `json:"data,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
	success       bool
}

// Success cria um resultado de sucesso com o payload informado.
func Success[T any](data T) Result[T] {
	return Result[T]{Data: data, success: true}
}

// Failure cria um resultado de falha com as notificações informadas.
func Failure[T any](notifications ...Notification) Result[T] {
	return Result[T]{Notifications: notifications}
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Contains informa se a notificação está presente no resultado.
func (r Result[T]) Contains(notification Notification) bool {
	for _, n := range r.Notifications {
		if n == notification {
			return true
		}
	}
	return false
}
