package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rihla/customer-queries/internal/auth"
	"github.com/rihla/customer-queries/internal/cache"
	"github.com/rihla/customer-queries/internal/errors"
	"github.com/rihla/customer-queries/internal/listing"
	"github.com/rihla/customer-queries/internal/model"
	"github.com/rihla/customer-queries/internal/repository"
)

// CustomerQueryService provides customer query business logic
type CustomerQueryService interface {
	List(ctx context.Context, params listing.Params) ([]model.CustomerQuery, error)
	FindByID(ctx context.Context, id string) (*model.CustomerQuery, error)
	Create(ctx context.Context, idn auth.Identity, q *model.CustomerQuery) (*model.CustomerQuery, error)
	Update(ctx context.Context, idn auth.Identity, q *model.CustomerQuery) (*model.CustomerQuery, error)
	DeleteByID(ctx context.Context, idn auth.Identity, id string) error
}

type customerQueryService struct {
	queryRps   repository.CustomerQueryRepository
	queryCache cache.CustomerQueryCacheRepository
	policy     *auth.Policy
}

// NewCustomerQueryService builds CustomerQueryService
func NewCustomerQueryService(
	queryRps repository.CustomerQueryRepository,
	queryCache cache.CustomerQueryCacheRepository,
	policy *auth.Policy,
) CustomerQueryService {
	return &customerQueryService{queryRps: queryRps, queryCache: queryCache, policy: policy}
}

// List fetches the whole collection and shapes it in memory according to
// params. There is no pagination and no server pushed delta - callers
// re-fetch after every mutation
func (s *customerQueryService) List(ctx context.Context, params listing.Params) ([]model.CustomerQuery, error) {
	queries, err := s.queryRps.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return listing.View(queries, params), nil
}

func (s *customerQueryService) FindByID(ctx context.Context, id string) (*model.CustomerQuery, error) {
	q, err := s.queryCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if q != nil {
		return q, nil
	}

	q, err = s.queryRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if q == nil {
		return nil, nil
	}

	if err := s.queryCache.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new record. CreatedBy is stamped with the authenticated
// user's display name and CreatedAt with the current server time, both
// write-once
func (s *customerQueryService) Create(ctx context.Context, idn auth.Identity, q *model.CustomerQuery) (*model.CustomerQuery, error) {
	if err := validateEnums(q); err != nil {
		return nil, err
	}

	q.ID = uuid.NewString()
	q.CreatedBy = idn.DisplayName
	q.CreatedAt = time.Now().UTC()

	if err := s.queryRps.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Update overwrites every editable field of the stored record in one write.
// It is a full overwrite, not a patch - what the caller sends is what the
// record becomes. Concurrent editors race with last write winning
func (s *customerQueryService) Update(ctx context.Context, idn auth.Identity, q *model.CustomerQuery) (*model.CustomerQuery, error) {
	if err := validateEnums(q); err != nil {
		return nil, err
	}

	existing, err := s.queryRps.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, errors.NewEntryNotFoundErr(fmt.Sprintf("customer query %s doesn't exist", q.ID))
	}

	if !s.policy.CanEdit(idn, existing.CreatedBy) {
		return nil, errors.NewAccessDeniedErr("you are not allowed to edit this customer query")
	}

	existing.ApplyEdit(q)
	if err := s.queryRps.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := s.queryCache.DeleteByID(ctx, existing.ID); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID hard deletes the record. There is no undo and no tombstone
func (s *customerQueryService) DeleteByID(ctx context.Context, idn auth.Identity, id string) error {
	if !s.policy.CanDelete(idn) {
		return errors.NewAccessDeniedErr("you are not allowed to delete customer queries")
	}

	existing, err := s.queryRps.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if existing == nil {
		return errors.NewEntryNotFoundErr(fmt.Sprintf("customer query %s doesn't exist", id))
	}

	if err := s.queryRps.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.queryCache.DeleteByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func validateEnums(q *model.CustomerQuery) error {
	if !q.QueryStatus.Valid() {
		return errors.NewBusinessErr("queryStatus", fmt.Sprintf("unknown query status %q", q.QueryStatus))
	}

	if !q.QuotationSend.Valid() {
		return errors.NewBusinessErr("quotationSend", fmt.Sprintf("unknown quotation send %q", q.QuotationSend))
	}
	return nil
}
