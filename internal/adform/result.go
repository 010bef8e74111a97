package adform

import "github.com/google/uuid"

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	MsgCreated = "Anúncio criado com sucesso!"
	MsgFailed  = "Erro ao criar o anúncio!"
)

// Result reports the outcome of one submit. Every failure carries the same
// Detail; Err keeps the cause for logging and callers that need it.
type Result struct {
	ID     uuid.UUID `json:"id"`
	Status Status    `json:"status"`
	Detail string    `json:"detail"`
	Err    error     `json:"-"`
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

func succeeded(id uuid.UUID) Result {
	return Result{ID: id, Status: StatusSuccess, Detail: MsgCreated}
}

func failed(id uuid.UUID, err error) Result {
	return Result{ID: id, Status: StatusError, Detail: MsgFailed, Err: err}
}

// Notifier receives the result of every submit.
type Notifier func(Result)
