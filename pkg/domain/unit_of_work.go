package domain

import "context"

// UnitOfWork delimita o escopo transacional de uma invocação de manipulador
// de comando. Begin abre um escopo novo no contexto; as escritas registradas
// nesse escopo são persistidas atomicamente no Commit. Invocações
// concorrentes carregam escopos independentes.
type UnitOfWork interface {
	Begin(ctx context.Context) context.Context
	Commit(ctx context.Context) error
}
