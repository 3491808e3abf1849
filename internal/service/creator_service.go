package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatorService resolves plan authors to their public {id, name, email} view.
type CreatorService interface {
	// Resolve maps each distinct non-zero ID to its creator. IDs of deleted
	// users are absent from the result.
	Resolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Creator, error)
}

type creatorService struct {
	userRepo repository.UserRepository
}

func NewCreatorService(userRepo repository.UserRepository) CreatorService {
	return &creatorService{userRepo: userRepo}
}

func (s *creatorService) Resolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Creator, error) {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	creators := make(map[primitive.ObjectID]*domain.Creator, len(unique))
	if len(unique) == 0 {
		return creators, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for i := range users {
		creators[users[i].ID] = users[i].AsCreator()
	}
	return creators, nil
}
