package domain

// Command representa uma intenção de mudança de estado no sistema.
type Command[T any] interface {
	CommandName() string
	Payload() T
}

// IDGenerator gera identificadores para novos agregados.
type IDGenerator[T any] func() T
