package server

import (
	"context"
	"log/slog"
	"strings"

	labreportsv1 "github.com/DurgeshS-25/labpanel-tracker/gen/proto/labreports/v1"
	"github.com/DurgeshS-25/labpanel-tracker/internal/common"
	"github.com/DurgeshS-25/labpanel-tracker/internal/repository"
)

type ProfilesServer struct {
	labreportsv1.UnimplementedProfilesServiceServer
	repo   repository.ProfileRepository
	logger *slog.Logger
}

func NewProfilesServer(repo repository.ProfileRepository, logger *slog.Logger) *ProfilesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfilesServer{repo: repo, logger: logger}
}

// CreateProfile creates a new profile.
func (s *ProfilesServer) CreateProfile(ctx context.Context, req *labreportsv1.CreateProfileRequest) (*labreportsv1.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	p, err := s.repo.Create(ctx, name, strings.TrimSpace(req.GetEmail()))
	if err != nil {
		s.logger.Error("create profile failed", "name", name, "error", err)
		return nil, common.InternalError("create profile failed")
	}

	return &labreportsv1.CreateProfileResponse{Profile: toPBProfile(p)}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfilesServer) ListProfiles(ctx context.Context, _ *labreportsv1.ListProfilesRequest) (*labreportsv1.ListProfilesResponse, error) {
	plist, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, common.InternalError("list profiles failed")
	}

	out := make([]*labreportsv1.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, toPBProfile(p))
	}
	return &labreportsv1.ListProfilesResponse{Profiles: out}, nil
}
