package jobs

import "context"

// Application carries everything the scheduling engine needs to know
// about one job application: the parties behind it and whether the job
// may receive offers at all.
type Application struct {
	ID    string `bson:"_id"`
	JobID string `bson:"job_id"`

	JobTitle  string `bson:"-"`
	Published bool   `bson:"-"`

	EmployerID    string `bson:"-"`
	EmployerEmail string `bson:"-"`
	EmployerChat  int64  `bson:"-"`

	CandidateID    string `bson:"candidate_id"`
	CandidateEmail string `bson:"candidate_email"`
	CandidateChat  int64  `bson:"candidate_chat"`
}

// Resolver looks up an application together with its job and parties.
// A missing application resolves to nil without error.
type Resolver interface {
	Resolve(ctx context.Context, applicationID string) (*Application, error)
}
