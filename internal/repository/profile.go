package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/gen/ent"
	entprofile "github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
)

type ProfileRepository interface {
	Create(ctx context.Context, name, email string) (*ent.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*ent.Profile, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{client: client, logger: logger}
}

func (r *profileRepository) Create(ctx context.Context, name, email string) (*ent.Profile, error) {
	builder := r.client.Profile.Create().SetName(name)
	if email != "" {
		builder = builder.SetEmail(email)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", name, "error", err)
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return r.client.Profile.Get(ctx, id)
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Profile.Query().Where(entprofile.ID(id)).Exist(ctx)
}

func (r *profileRepository) List(ctx context.Context) ([]*ent.Profile, error) {
	return r.client.Profile.Query().Order(entprofile.ByCreatedAt()).All(ctx)
}
