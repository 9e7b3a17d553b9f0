package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rihla/customer-queries/internal/auth"
	cacheMocks "github.com/rihla/customer-queries/internal/cache/mocks"
	"github.com/rihla/customer-queries/internal/listing"
	"github.com/rihla/customer-queries/internal/model"
	rpsMocks "github.com/rihla/customer-queries/internal/repository/mocks"
)

const adminEmail = "admin@rihla.travel"

type customerQueryTestData struct {
	ctx      context.Context
	admin    auth.Identity
	creator  auth.Identity
	stranger auth.Identity
	query    *model.CustomerQuery
}

type customerQueryServiceTestSuite struct {
	suite.Suite
	querySvc       CustomerQueryService
	queryRpsMock   *rpsMocks.CustomerQueryRepository
	queryCacheMock *cacheMocks.CustomerQueryCacheRepository
	testData       *customerQueryTestData
}

func (s *customerQueryServiceTestSuite) SetupSuite() {
	s.testData = &customerQueryTestData{
		ctx:      context.Background(),
		admin:    auth.Identity{Email: adminEmail, DisplayName: "Administrator"},
		creator:  auth.Identity{Email: "bilal@rihla.travel", DisplayName: "Bilal Ahmed"},
		stranger: auth.Identity{Email: "sana@rihla.travel", DisplayName: "Sana Tariq"},
		query: &model.CustomerQuery{
			ID:            "ecc770d9-4576-4f72-affa-8b1454246692",
			Name:          "Ayesha Khan",
			Number:        "03001234567",
			Email:         "ayesha@somemail.com",
			City:          "Lahore",
			QueryStatus:   model.QueryStatusInterested,
			QuotationSend: model.QuotationSendChat,
			Query:         "Honeymoon trip to Hunza",
			Remarks:       "call back on weekend",
			CreatedBy:     "Bilal Ahmed",
			CreatedAt:     time.Date(2024, time.December, 1, 14, 30, 0, 0, time.UTC),
		},
	}
}

func (s *customerQueryServiceTestSuite) SetupTest() {
	t := s.T()
	s.queryRpsMock = rpsMocks.NewCustomerQueryRepository(t)
	s.queryCacheMock = cacheMocks.NewCustomerQueryCacheRepository(t)
	s.querySvc = NewCustomerQueryService(s.queryRpsMock, s.queryCacheMock, auth.NewPolicy(adminEmail))
}

func (s *customerQueryServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	query := s.testData.query

	s.queryCacheMock.On("FindByID", ctx, query.ID).Return(query, nil).Once()

	s.T().Log("customer query must be found in cache")
	{
		_, err := s.querySvc.FindByID(ctx, query.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.queryRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, query.ID)
	}
}

func (s *customerQueryServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	query := s.testData.query

	s.queryCacheMock.On("FindByID", ctx, query.ID).Return(nil, nil).Once()
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(nil, nil).Once()

	s.T().Log("customer query is missing in cache and in primary datasource")
	{
		q, err := s.querySvc.FindByID(ctx, query.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(q, "no customer query must be present but it was found")
		s.queryCacheMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.CustomerQuery"))
	}
}

func (s *customerQueryServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	query := s.testData.query

	s.queryCacheMock.On("FindByID", ctx, query.ID).Return(nil, nil).Once()
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(query, nil).Once()
	s.queryCacheMock.On("Create", ctx, query).Return(nil).Once()

	s.T().Log("customer query is not in cache, found in primary datasource and cached")
	{
		q, err := s.querySvc.FindByID(ctx, query.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(q, "customer query must be found")
	}
}

func (s *customerQueryServiceTestSuite) TestCreateStampsProvenance() {
	ctx := s.testData.ctx
	creator := s.testData.creator

	s.queryRpsMock.On("Create", ctx, mock.AnythingOfType("*model.CustomerQuery")).Return(nil).Once()

	s.T().Log("created record must carry id, createdBy and createdAt")
	{
		q, err := s.querySvc.Create(ctx, creator, &model.CustomerQuery{
			Name:          "Daniyal Sheikh",
			Number:        "03217654321",
			Email:         "daniyal@othermail.com",
			QueryStatus:   model.QueryStatusNotRespond,
			QuotationSend: model.QuotationSendNo,
			Query:         "Family tour to Skardu",
		})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(q.ID, "id must be assigned on creation")
		s.Assert().Equal(creator.DisplayName, q.CreatedBy, "createdBy must be the creator's display name")
		s.Assert().False(q.CreatedAt.IsZero(), "createdAt must be stamped")
	}
}

func (s *customerQueryServiceTestSuite) TestCreateUnknownEnum() {
	ctx := s.testData.ctx

	s.T().Log("creation with unknown query status must be rejected before any write")
	{
		_, err := s.querySvc.Create(ctx, s.testData.creator, &model.CustomerQuery{
			Name:          "Daniyal Sheikh",
			Number:        "03217654321",
			QueryStatus:   "Maybe Later",
			QuotationSend: model.QuotationSendNo,
		})
		s.Assert().Error(err, "error must be raised")
		s.queryRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.CustomerQuery"))
	}
}

func (s *customerQueryServiceTestSuite) TestUpdateOverwritesEditableFieldsOnly() {
	ctx := s.testData.ctx
	query := s.testData.query

	stored := *query
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(&stored, nil).Once()
	s.queryRpsMock.On("Update", ctx, mock.AnythingOfType("*model.CustomerQuery")).Return(nil).Once()
	s.queryCacheMock.On("DeleteByID", ctx, query.ID).Return(nil).Once()

	s.T().Log("update must replace editable fields and keep createdBy/createdAt")
	{
		upd, err := s.querySvc.Update(ctx, s.testData.creator, &model.CustomerQuery{
			ID:            query.ID,
			Name:          "Ayesha Siddiqui",
			Number:        "03009998877",
			Email:         "ayesha.s@somemail.com",
			City:          "Multan",
			QueryStatus:   model.QueryStatusPostponed,
			QuotationSend: model.QuotationSendEmail,
			Query:         "Honeymoon trip to Hunza",
			CreatedBy:     "Imposter",
			CreatedAt:     time.Now(),
		})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal("Ayesha Siddiqui", upd.Name)
		s.Assert().Equal(query.CreatedBy, upd.CreatedBy, "createdBy is write-once")
		s.Assert().Equal(query.CreatedAt, upd.CreatedAt, "createdAt is write-once")
	}
}

func (s *customerQueryServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	query := s.testData.query

	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(nil, nil).Once()

	s.T().Log("update of a vanished record must be rejected")
	{
		_, err := s.querySvc.Update(ctx, s.testData.admin, query)
		s.Assert().Error(err, "error must be raised")
		s.queryRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.CustomerQuery"))
	}
}

func (s *customerQueryServiceTestSuite) TestUpdateForbiddenForStranger() {
	ctx := s.testData.ctx
	query := s.testData.query

	stored := *query
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(&stored, nil).Once()

	s.T().Log("only the creator and the administrator may edit")
	{
		_, err := s.querySvc.Update(ctx, s.testData.stranger, query)
		s.Assert().Error(err, "error must be raised")
		s.queryRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.CustomerQuery"))
	}
}

func (s *customerQueryServiceTestSuite) TestUpdateAllowedForAdmin() {
	ctx := s.testData.ctx
	query := s.testData.query

	stored := *query
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(&stored, nil).Once()
	s.queryRpsMock.On("Update", ctx, mock.AnythingOfType("*model.CustomerQuery")).Return(nil).Once()
	s.queryCacheMock.On("DeleteByID", ctx, query.ID).Return(nil).Once()

	s.T().Log("administrator may edit any record")
	{
		_, err := s.querySvc.Update(ctx, s.testData.admin, query)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerQueryServiceTestSuite) TestDeleteForbiddenForCreator() {
	ctx := s.testData.ctx
	query := s.testData.query

	s.T().Log("even the creator must not delete, deletion is admin-only")
	{
		err := s.querySvc.DeleteByID(ctx, s.testData.creator, query.ID)
		s.Assert().Error(err, "error must be raised")
		s.queryRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, query.ID)
	}
}

func (s *customerQueryServiceTestSuite) TestDeleteByAdmin() {
	ctx := s.testData.ctx
	query := s.testData.query

	stored := *query
	s.queryRpsMock.On("FindByID", ctx, query.ID).Return(&stored, nil).Once()
	s.queryRpsMock.On("DeleteByID", ctx, query.ID).Return(nil).Once()
	s.queryCacheMock.On("DeleteByID", ctx, query.ID).Return(nil).Once()

	s.T().Log("administrator hard deletes the record and evicts the cache")
	{
		err := s.querySvc.DeleteByID(ctx, s.testData.admin, query.ID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerQueryServiceTestSuite) TestListShapesView() {
	ctx := s.testData.ctx
	query := s.testData.query

	other := *query
	other.ID = "3f3a2b72-5a68-4f10-9f3b-5d819ca41e29"
	other.Name = "Zara Iqbal"
	other.City = "Karachi"

	s.queryRpsMock.On("FindAll", ctx).Return([]model.CustomerQuery{*query, other}, nil).Once()

	s.T().Log("list must fetch everything and apply the requested view")
	{
		view, err := s.querySvc.List(ctx, listing.Params{Search: "karachi"})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Len(view, 1)
		s.Assert().Equal("Zara Iqbal", view[0].Name)
	}
}

func (s *customerQueryServiceTestSuite) TestListRepositoryFailure() {
	ctx := s.testData.ctx

	s.queryRpsMock.On("FindAll", ctx).Return(nil, errors.New("network unreachable")).Once()

	s.T().Log("repository failure must propagate")
	{
		_, err := s.querySvc.List(ctx, listing.Params{})
		s.Assert().Error(err, "error must be raised")
	}
}

func TestCustomerQueryService(t *testing.T) {
	suite.Run(t, new(customerQueryServiceTestSuite))
}
