// Package services contains server-side business logic. This file implements
// MemberService, which turns primitive inputs into member records and
// delegates persistence to a members.Repository.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
)

// MemberService provides member operations:
// - Create: build a new member from name and email and persist it
// - Get: look a member up by id, reporting absence as found=false
// - GetAll: list every member
// - Delete: remove a member by id
//
// No validation is applied; any name and email are accepted.
type MemberService struct {
	repo members.Repository
}

// NewMemberService constructs a MemberService over repo.
func NewMemberService(repo members.Repository) *MemberService {
	return &MemberService{repo: repo}
}

// Create persists a new member and returns it with its id assigned.
func (s *MemberService) Create(ctx context.Context, name, email string) (*models.Member, error) {
	member := &models.Member{Name: name, Email: email}
	m, err := s.repo.Save(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("error creating member: %w", err)
	}
	return m, nil
}

// Get returns the member with the given id. A missing member yields
// (nil, false, nil); err is reserved for storage failures.
func (s *MemberService) Get(ctx context.Context, id int64) (*models.Member, bool, error) {
	m, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("error getting member: %w", err)
	}
	return m, found, nil
}

// GetAll returns the repository's full member collection unmodified.
func (s *MemberService) GetAll(ctx context.Context) ([]models.Member, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	return all, nil
}

// Delete removes the member with the given id. Unknown ids are not an error.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting member: %w", err)
	}
	return nil
}
