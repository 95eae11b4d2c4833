package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// topEntityLimit caps the top viewed projects/blogs lists on the dashboard.
const topEntityLimit = 5

// RequestMeta is the client metadata derived from the incoming request at
// record time. It is never taken from the request payload.
type RequestMeta struct {
	UserAgent string
	Referrer  string
	IPAddress string
	SessionID string
}

// AnalyticsService records events and computes dashboard aggregations.
type AnalyticsService struct {
	events   repository.AnalyticsRepository
	projects repository.ProjectRepository
	blogs    repository.BlogRepository
	contacts repository.ContactRepository
	log      *zap.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	events repository.AnalyticsRepository,
	projects repository.ProjectRepository,
	blogs repository.BlogRepository,
	contacts repository.ContactRepository,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		events:   events,
		projects: projects,
		blogs:    blogs,
		contacts: contacts,
		log:      log,
	}
}

// Track validates and appends a single event. Entity references are stored
// as-is without checking that they resolve; tracking stays fast and
// best-effort. A reference is only attached when it matches the event type,
// so an event never carries more than one.
func (s *AnalyticsService) Track(ctx context.Context, req *dto.TrackEventRequest, meta RequestMeta) (string, error) {
	eventType := domain.EventType(req.Type)
	if !eventType.Valid() {
		return "", fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, req.Type)
	}

	event := &domain.AnalyticsEvent{
		Type:      eventType,
		Page:      req.Page,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		Referrer:  meta.Referrer,
		SessionID: meta.SessionID,
		Metadata:  req.Metadata,
	}

	if eventType == domain.EventProjectView && req.ProjectID != "" {
		id, err := bson.ObjectIDFromHex(req.ProjectID)
		if err != nil {
			return "", fmt.Errorf("%w: invalid projectId %q", domain.ErrValidation, req.ProjectID)
		}
		event.ProjectID = &id
	}
	if eventType == domain.EventBlogView && req.BlogID != "" {
		id, err := bson.ObjectIDFromHex(req.BlogID)
		if err != nil {
			return "", fmt.Errorf("%w: invalid blogId %q", domain.ErrValidation, req.BlogID)
		}
		event.BlogID = &id
	}

	id, err := s.events.Insert(ctx, event)
	if err != nil {
		return "", fmt.Errorf("failed to record event: %w", err)
	}

	return id.Hex(), nil
}

// Dashboard computes the admin dashboard summary for a window of
// periodDays days ending now. Inventory totals are current counts and
// deliberately not windowed.
func (s *AnalyticsService) Dashboard(ctx context.Context, periodDays int) (*dto.DashboardResponse, error) {
	if periodDays <= 0 {
		return nil, fmt.Errorf("%w: period must be a positive number of days", domain.ErrValidation)
	}
	since := time.Now().UTC().AddDate(0, 0, -periodDays)

	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	totalBlogs, err := s.blogs.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blogs: %w", err)
	}
	totalMessages, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	summary := dto.DashboardSummary{
		TotalProjects: totalProjects,
		TotalBlogs:    totalBlogs,
		TotalMessages: totalMessages,
	}

	windowed := []struct {
		eventType domain.EventType
		dest      *int64
	}{
		{domain.EventPageView, &summary.PageViews},
		{domain.EventProjectView, &summary.ProjectViews},
		{domain.EventBlogView, &summary.BlogViews},
		{domain.EventResumeDownload, &summary.ResumeDownloads},
		{domain.EventContactForm, &summary.ContactForms},
	}
	for _, w := range windowed {
		count, err := s.events.CountByType(ctx, w.eventType, since)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s events: %w", w.eventType, err)
		}
		*w.dest = count
	}

	topProjects, err := s.topEntities(ctx, domain.EventProjectView, since, s.projects.TitlesByIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top projects: %w", err)
	}
	topBlogs, err := s.topEntities(ctx, domain.EventBlogView, since, s.blogs.TitlesByIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top blogs: %w", err)
	}

	days, err := s.events.CountByDay(ctx, domain.ViewEventTypes(), since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily views: %w", err)
	}
	daily := make([]dto.DailyViews, 0, len(days))
	for _, d := range days {
		daily = append(daily, dto.DailyViews{Date: d.Date, Views: d.Count})
	}

	return &dto.DashboardResponse{
		Summary:     summary,
		TopProjects: topProjects,
		TopBlogs:    topBlogs,
		DailyViews:  daily,
	}, nil
}

// topEntities groups in-window view events by reference, joins the counts
// against the live entity titles, and returns the top entries. References
// that no longer resolve are excluded; their events still count toward the
// per-type totals. Ties are broken by ID ascending so the order is
// deterministic.
func (s *AnalyticsService) topEntities(
	ctx context.Context,
	eventType domain.EventType,
	since time.Time,
	resolve func(context.Context, []bson.ObjectID) (map[bson.ObjectID]string, error),
) ([]dto.TopEntity, error) {
	refs, err := s.events.CountRefs(ctx, eventType, since)
	if err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	titles, err := resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	top := make([]dto.TopEntity, 0, len(refs))
	for _, ref := range refs {
		title, ok := titles[ref.ID]
		if !ok {
			continue // dangling reference
		}
		top = append(top, dto.TopEntity{ID: ref.ID.Hex(), Title: title, Views: ref.Count})
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Views != top[j].Views {
			return top[i].Views > top[j].Views
		}
		return top[i].ID < top[j].ID
	})

	if len(top) > topEntityLimit {
		top = top[:topEntityLimit]
	}
	return top, nil
}

// Detailed returns one page of raw events matching the filters, newest
// first, with references resolved to titles where they still resolve.
func (s *AnalyticsService) Detailed(ctx context.Context, req *dto.DetailedAnalyticsRequest) (*dto.DetailedAnalyticsResponse, error) {
	query := repository.EventQuery{Page: req.Page, Limit: req.Limit}

	if req.Type != "" {
		eventType := domain.EventType(req.Type)
		if !eventType.Valid() {
			return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, req.Type)
		}
		query.Type = eventType
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startDate %q", domain.ErrValidation, req.StartDate)
		}
		query.Start = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", domain.ErrValidation, req.EndDate)
		}
		query.End = &end
	}
	if query.Start != nil && query.End != nil && query.Start.After(*query.End) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", domain.ErrValidation)
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 50
	}

	events, total, err := s.events.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	details, err := s.resolveDetails(ctx, events)
	if err != nil {
		return nil, err
	}

	totalPages := (total + query.Limit - 1) / query.Limit

	return &dto.DetailedAnalyticsResponse{
		Analytics:   details,
		TotalPages:  totalPages,
		CurrentPage: query.Page,
		Total:       total,
	}, nil
}

// resolveDetails batch-resolves the entity titles referenced by a page of
// events. Dangling references keep their raw ID with no title.
func (s *AnalyticsService) resolveDetails(ctx context.Context, events []domain.AnalyticsEvent) ([]dto.AnalyticsEventDetail, error) {
	var projectIDs, blogIDs []bson.ObjectID
	for _, e := range events {
		if e.ProjectID != nil {
			projectIDs = append(projectIDs, *e.ProjectID)
		}
		if e.BlogID != nil {
			blogIDs = append(blogIDs, *e.BlogID)
		}
	}

	projectTitles := map[bson.ObjectID]string{}
	if len(projectIDs) > 0 {
		var err error
		projectTitles, err = s.projects.TitlesByIDs(ctx, projectIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project titles: %w", err)
		}
	}
	blogTitles := map[bson.ObjectID]string{}
	if len(blogIDs) > 0 {
		var err error
		blogTitles, err = s.blogs.TitlesByIDs(ctx, blogIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve blog titles: %w", err)
		}
	}

	details := make([]dto.AnalyticsEventDetail, 0, len(events))
	for _, e := range events {
		detail := dto.AnalyticsEventDetail{AnalyticsEvent: e}
		if e.ProjectID != nil {
			detail.ProjectTitle = projectTitles[*e.ProjectID]
		}
		if e.BlogID != nil {
			detail.BlogTitle = blogTitles[*e.BlogID]
		}
		details = append(details, detail)
	}
	return details, nil
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
