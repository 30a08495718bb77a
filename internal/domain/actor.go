package domain

type ActorKind string

const (
	ActorUser  ActorKind = "user"
	ActorAdmin ActorKind = "admin"
)

// Actor identifies the caller of an endpoint as a tagged variant instead of
// leaving handlers to inspect raw headers. ID is the user or admin id
// depending on Kind.
type Actor struct {
	Kind ActorKind
	ID   int
}

func (a Actor) IsUser() bool {
	return a.Kind == ActorUser && a.ID > 0
}

func (a Actor) IsAdmin() bool {
	return a.Kind == ActorAdmin && a.ID > 0
}
