package service

import (
	"context"
	"mime/multipart"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// AnalyticsServicer defines the analytics operations: the recorder, the
// dashboard aggregator, and the detailed event listing.
type AnalyticsServicer interface {
	Track(ctx context.Context, req *dto.TrackEventRequest, meta RequestMeta) (string, error)
	Dashboard(ctx context.Context, periodDays int) (*dto.DashboardResponse, error)
	Detailed(ctx context.Context, req *dto.DetailedAnalyticsRequest) (*dto.DetailedAnalyticsResponse, error)
}

// ProfileServicer defines operations on the singleton profile.
type ProfileServicer interface {
	PublicProfile(ctx context.Context) (*domain.Profile, error)
	AdminProfile(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	SetResume(ctx context.Context, url string) (*domain.Profile, error)
	ResumeURL(ctx context.Context) (string, error)
}

// SkillServicer defines skill CRUD operations.
type SkillServicer interface {
	List(ctx context.Context, visibleOnly bool) ([]domain.Skill, error)
	Grouped(ctx context.Context) (map[domain.SkillCategory][]domain.Skill, error)
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, id string, skill *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, items []dto.SkillOrderItem) error
}

// ExperienceServicer defines experience CRUD operations.
type ExperienceServicer interface {
	List(ctx context.Context, visibleOnly bool, expType string) ([]domain.Experience, error)
	Grouped(ctx context.Context) (map[domain.ExperienceType][]domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id string, exp *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}

// BlogServicer defines blog operations.
type BlogServicer interface {
	List(ctx context.Context, req *dto.BlogListRequest) (*dto.BlogListResponse, error)
	AdminList(ctx context.Context, req *dto.AdminListRequest) (*dto.BlogListResponse, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// ProjectServicer defines project CRUD operations.
type ProjectServicer interface {
	List(ctx context.Context, visibleOnly bool) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ContactServicer defines contact form operations.
type ContactServicer interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

// AuthServicer defines admin authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (string, error)
	Verify(token string) (*Claims, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

// UploadServicer defines file upload operations.
type UploadServicer interface {
	Store(ctx context.Context, uploadType string, header *multipart.FileHeader) (*dto.UploadResponse, error)
	Remove(ctx context.Context, uploadType, filename string) error
}
