package jobs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/pkg/errors"
)

func NewResolver(client *repo.Client) Resolver {
	return &mongoResolver{
		applications: client.Collection(repo.CollApplications),
		jobs:         client.Collection(repo.CollJobs),
	}
}

type mongoResolver struct {
	applications *mongo.Collection
	jobs         *mongo.Collection
}

type jobDoc struct {
	ID            string `bson:"_id"`
	EmployerID    string `bson:"employer_id"`
	EmployerEmail string `bson:"employer_email"`
	EmployerChat  int64  `bson:"employer_chat"`
	Title         string `bson:"title"`
	Published     bool   `bson:"published"`
}

func (m *mongoResolver) Resolve(ctx context.Context, applicationID string) (*Application, error) {
	r := m.applications.FindOne(ctx, bson.M{"_id": applicationID})

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find application")
	}

	var app Application
	err = r.Decode(&app)
	if err != nil {
		return nil, errors.WrapFail(err, "decode application")
	}

	jr := m.jobs.FindOne(ctx, bson.M{"_id": app.JobID})

	err = jr.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find job of application")
	}

	var job jobDoc
	err = jr.Decode(&job)
	if err != nil {
		return nil, errors.WrapFail(err, "decode job")
	}

	app.JobTitle = job.Title
	app.Published = job.Published
	app.EmployerID = job.EmployerID
	app.EmployerEmail = job.EmployerEmail
	app.EmployerChat = job.EmployerChat

	return &app, nil
}
