package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

func newAnalyticsService() (*AnalyticsService, *MockAnalyticsRepository, *MockProjectRepository, *MockBlogRepository, *MockContactRepository) {
	events := new(MockAnalyticsRepository)
	projects := new(MockProjectRepository)
	blogs := new(MockBlogRepository)
	contacts := new(MockContactRepository)
	svc := NewAnalyticsService(events, projects, blogs, contacts, zap.NewNop())
	return svc, events, projects, blogs, contacts
}

func TestAnalyticsService_Track_Success(t *testing.T) {
	svc, events, _, _, _ := newAnalyticsService()

	eventID := bson.NewObjectID()
	events.On("Insert", mock.Anything, mock.AnythingOfType("*domain.AnalyticsEvent")).Return(eventID, nil)

	req := &dto.TrackEventRequest{Type: "page_view", Page: "/projects"}
	meta := RequestMeta{UserAgent: "agent", IPAddress: "10.0.0.1", Referrer: "https://example.com"}

	id, err := svc.Track(context.Background(), req, meta)

	assert.NoError(t, err)
	assert.Equal(t, eventID.Hex(), id)

	inserted := events.Calls[0].Arguments.Get(1).(*domain.AnalyticsEvent)
	assert.Equal(t, domain.EventPageView, inserted.Type)
	assert.Equal(t, "/projects", inserted.Page)
	assert.Equal(t, "agent", inserted.UserAgent)
	assert.Equal(t, "10.0.0.1", inserted.IPAddress)
	events.AssertExpectations(t)
}

func TestAnalyticsService_Track_UnknownType(t *testing.T) {
	svc, events, _, _, _ := newAnalyticsService()

	req := &dto.TrackEventRequest{Type: "clicked_the_thing"}

	id, err := svc.Track(context.Background(), req, RequestMeta{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, id)
	events.AssertNotCalled(t, "Insert")
}

func TestAnalyticsService_Track_RefMatchesTypeOnly(t *testing.T) {
	svc, events, _, _, _ := newAnalyticsService()

	events.On("Insert", mock.Anything, mock.AnythingOfType("*domain.AnalyticsEvent")).Return(bson.NewObjectID(), nil)

	// A page_view carrying entity IDs must not store either reference.
	req := &dto.TrackEventRequest{
		Type:      "page_view",
		ProjectID: bson.NewObjectID().Hex(),
		BlogID:    bson.NewObjectID().Hex(),
	}

	_, err := svc.Track(context.Background(), req, RequestMeta{})

	assert.NoError(t, err)
	inserted := events.Calls[0].Arguments.Get(1).(*domain.AnalyticsEvent)
	assert.Nil(t, inserted.ProjectID)
	assert.Nil(t, inserted.BlogID)
}

func TestAnalyticsService_Track_ProjectViewAttachesRef(t *testing.T) {
	svc, events, _, _, _ := newAnalyticsService()

	events.On("Insert", mock.Anything, mock.AnythingOfType("*domain.AnalyticsEvent")).Return(bson.NewObjectID(), nil)

	projectID := bson.NewObjectID()
	req := &dto.TrackEventRequest{Type: "project_view", ProjectID: projectID.Hex()}

	_, err := svc.Track(context.Background(), req, RequestMeta{})

	assert.NoError(t, err)
	inserted := events.Calls[0].Arguments.Get(1).(*domain.AnalyticsEvent)
	assert.NotNil(t, inserted.ProjectID)
	assert.Equal(t, projectID, *inserted.ProjectID)
	assert.Nil(t, inserted.BlogID)
}

func TestAnalyticsService_Track_MalformedProjectID(t *testing.T) {
	svc, events, _, _, _ := newAnalyticsService()

	req := &dto.TrackEventRequest{Type: "project_view", ProjectID: "not-a-hex-id"}

	_, err := svc.Track(context.Background(), req, RequestMeta{})

	assert.ErrorIs(t, err, domain.ErrValidation)
	events.AssertNotCalled(t, "Insert")
}

func TestAnalyticsService_Dashboard_InvalidPeriod(t *testing.T) {
	svc, _, _, _, _ := newAnalyticsService()

	_, err := svc.Dashboard(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Dashboard(context.Background(), -7)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyticsService_Dashboard_Aggregates(t *testing.T) {
	svc, events, projects, blogs, contacts := newAnalyticsService()

	projects.On("Count", mock.Anything).Return(int64(4), nil)
	blogs.On("CountPublished", mock.Anything).Return(int64(3), nil)
	contacts.On("Count", mock.Anything).Return(int64(9), nil)

	events.On("CountByType", mock.Anything, domain.EventPageView, mock.Anything).Return(int64(100), nil)
	events.On("CountByType", mock.Anything, domain.EventProjectView, mock.Anything).Return(int64(40), nil)
	events.On("CountByType", mock.Anything, domain.EventBlogView, mock.Anything).Return(int64(30), nil)
	events.On("CountByType", mock.Anything, domain.EventResumeDownload, mock.Anything).Return(int64(5), nil)
	events.On("CountByType", mock.Anything, domain.EventContactForm, mock.Anything).Return(int64(2), nil)

	liveProject := bson.NewObjectID()
	deletedProject := bson.NewObjectID()
	events.On("CountRefs", mock.Anything, domain.EventProjectView, mock.Anything).Return([]repository.RefCount{
		{ID: deletedProject, Count: 25},
		{ID: liveProject, Count: 15},
	}, nil)
	// The deleted project resolves to nothing and must disappear from the
	// list while its 25 views still count in the summary above.
	projects.On("TitlesByIDs", mock.Anything, mock.Anything).Return(map[bson.ObjectID]string{
		liveProject: "Live project",
	}, nil)

	events.On("CountRefs", mock.Anything, domain.EventBlogView, mock.Anything).Return([]repository.RefCount{}, nil)
	blogs.On("TitlesByIDs", mock.Anything, mock.Anything).Return(map[bson.ObjectID]string{}, nil)

	events.On("CountByDay", mock.Anything, domain.ViewEventTypes(), mock.Anything).Return([]repository.DayCount{
		{Date: "2025-08-01", Count: 12},
		{Date: "2025-08-03", Count: 7},
	}, nil)

	resp, err := svc.Dashboard(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), resp.Summary.TotalProjects)
	assert.Equal(t, int64(3), resp.Summary.TotalBlogs)
	assert.Equal(t, int64(9), resp.Summary.TotalMessages)
	assert.Equal(t, int64(100), resp.Summary.PageViews)
	assert.Equal(t, int64(40), resp.Summary.ProjectViews)
	assert.Equal(t, int64(30), resp.Summary.BlogViews)
	assert.Equal(t, int64(5), resp.Summary.ResumeDownloads)
	assert.Equal(t, int64(2), resp.Summary.ContactForms)

	assert.Len(t, resp.TopProjects, 1)
	assert.Equal(t, liveProject.Hex(), resp.TopProjects[0].ID)
	assert.Equal(t, "Live project", resp.TopProjects[0].Title)
	assert.Equal(t, int64(15), resp.TopProjects[0].Views)

	assert.Empty(t, resp.TopBlogs)
	assert.Len(t, resp.DailyViews, 2)
	assert.Equal(t, "2025-08-01", resp.DailyViews[0].Date)
	assert.Equal(t, int64(12), resp.DailyViews[0].Views)
}

func TestAnalyticsService_Dashboard_TopEntityOrdering(t *testing.T) {
	svc, events, projects, blogs, contacts := newAnalyticsService()

	projects.On("Count", mock.Anything).Return(int64(0), nil)
	blogs.On("CountPublished", mock.Anything).Return(int64(0), nil)
	contacts.On("Count", mock.Anything).Return(int64(0), nil)
	events.On("CountByType", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	events.On("CountRefs", mock.Anything, domain.EventBlogView, mock.Anything).Return([]repository.RefCount{}, nil)
	blogs.On("TitlesByIDs", mock.Anything, mock.Anything).Return(map[bson.ObjectID]string{}, nil)
	events.On("CountByDay", mock.Anything, mock.Anything, mock.Anything).Return([]repository.DayCount{}, nil)

	// Seven projects: more than the list cap, with a tie at the top.
	ids := make([]bson.ObjectID, 7)
	titles := make(map[bson.ObjectID]string, 7)
	refs := make([]repository.RefCount, 7)
	for i := range ids {
		ids[i] = bson.NewObjectID()
		titles[ids[i]] = "p"
	}
	counts := []int64{50, 50, 40, 30, 20, 10, 5}
	for i, id := range ids {
		refs[i] = repository.RefCount{ID: id, Count: counts[i]}
	}
	events.On("CountRefs", mock.Anything, domain.EventProjectView, mock.Anything).Return(refs, nil)
	projects.On("TitlesByIDs", mock.Anything, mock.Anything).Return(titles, nil)

	resp, err := svc.Dashboard(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, resp.TopProjects, 5)
	assert.Equal(t, int64(50), resp.TopProjects[0].Views)
	assert.Equal(t, int64(50), resp.TopProjects[1].Views)
	// Equal view counts order by ID so repeated calls return the same list.
	assert.Less(t, resp.TopProjects[0].ID, resp.TopProjects[1].ID)
	assert.Equal(t, int64(20), resp.TopProjects[4].Views)
}

func TestAnalyticsService_Detailed_InvalidDates(t *testing.T) {
	svc, _, _, _, _ := newAnalyticsService()

	_, err := svc.Detailed(context.Background(), &dto.DetailedAnalyticsRequest{StartDate: "31-08-2025"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Detailed(context.Background(), &dto.DetailedAnalyticsRequest{
		StartDate: "2025-08-31",
		EndDate:   "2025-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyticsService_Detailed_UnknownType(t *testing.T) {
	svc, _, _, _, _ := newAnalyticsService()

	_, err := svc.Detailed(context.Background(), &dto.DetailedAnalyticsRequest{Type: "bogus"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyticsService_Detailed_ResolvesTitlesAndPaginates(t *testing.T) {
	svc, events, projects, _, _ := newAnalyticsService()

	projectID := bson.NewObjectID()
	danglingID := bson.NewObjectID()
	page := []domain.AnalyticsEvent{
		{ID: bson.NewObjectID(), Type: domain.EventProjectView, ProjectID: &projectID},
		{ID: bson.NewObjectID(), Type: domain.EventProjectView, ProjectID: &danglingID},
		{ID: bson.NewObjectID(), Type: domain.EventPageView},
	}

	events.On("Find", mock.Anything, repository.EventQuery{
		Type:  domain.EventProjectView,
		Page:  2,
		Limit: 3,
	}).Return(page, int64(7), nil)
	projects.On("TitlesByIDs", mock.Anything, []bson.ObjectID{projectID, danglingID}).
		Return(map[bson.ObjectID]string{projectID: "Resolved"}, nil)

	resp, err := svc.Detailed(context.Background(), &dto.DetailedAnalyticsRequest{
		Type:  "project_view",
		Page:  2,
		Limit: 3,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, int64(3), resp.TotalPages)
	assert.Equal(t, int64(2), resp.CurrentPage)
	assert.Len(t, resp.Analytics, 3)
	assert.Equal(t, "Resolved", resp.Analytics[0].ProjectTitle)
	assert.Empty(t, resp.Analytics[1].ProjectTitle)
	assert.Empty(t, resp.Analytics[2].ProjectTitle)
}
