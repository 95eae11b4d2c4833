package dto

import (
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"unknown event type"`
}

// MessageResponse represents a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"Event tracked successfully"`
}

// DashboardSummary combines current inventory totals (not windowed) with
// event counts for the requested window.
type DashboardSummary struct {
	TotalProjects   int64 `json:"totalProjects" example:"12"`
	TotalBlogs      int64 `json:"totalBlogs" example:"8"`
	TotalMessages   int64 `json:"totalMessages" example:"34"`
	PageViews       int64 `json:"pageViews" example:"1500"`
	ProjectViews    int64 `json:"projectViews" example:"420"`
	BlogViews       int64 `json:"blogViews" example:"380"`
	ResumeDownloads int64 `json:"resumeDownloads" example:"25"`
	ContactForms    int64 `json:"contactForms" example:"17"`
}

// TopEntity is one row of a top-viewed listing, already joined to its
// current title.
type TopEntity struct {
	ID    string `json:"id" example:"665f1c2e8b3e4a0d9c1b2a3f"`
	Title string `json:"title" example:"Distributed cache"`
	Views int64  `json:"views" example:"97"`
}

// DailyViews is the view count for one calendar day.
type DailyViews struct {
	Date  string `json:"date" example:"2025-08-14"`
	Views int64  `json:"views" example:"120"`
}

// DashboardResponse represents the dashboard aggregation result.
type DashboardResponse struct {
	Summary     DashboardSummary `json:"summary"`
	TopProjects []TopEntity      `json:"topProjects"`
	TopBlogs    []TopEntity      `json:"topBlogs"`
	DailyViews  []DailyViews     `json:"dailyViews"`
}

// AnalyticsEventDetail is one raw event with its references resolved to
// display titles where they still resolve. Dangling references keep the
// raw ID and an empty title.
type AnalyticsEventDetail struct {
	domain.AnalyticsEvent
	ProjectTitle string `json:"projectTitle,omitempty" example:"Distributed cache"`
	BlogTitle    string `json:"blogTitle,omitempty" example:"On channels"`
}

// DetailedAnalyticsResponse represents one page of raw events.
type DetailedAnalyticsResponse struct {
	Analytics   []AnalyticsEventDetail `json:"analytics"`
	TotalPages  int64                  `json:"totalPages" example:"4"`
	CurrentPage int64                  `json:"currentPage" example:"1"`
	Total       int64                  `json:"total" example:"182"`
}

// BlogListResponse represents one page of blog posts.
type BlogListResponse struct {
	Blogs       []domain.BlogPost `json:"blogs"`
	TotalPages  int64             `json:"totalPages" example:"3"`
	CurrentPage int64             `json:"currentPage" example:"1"`
	Total       int64             `json:"total" example:"27"`
}

// LikeResponse represents the like counter after a like.
type LikeResponse struct {
	Likes int64 `json:"likes" example:"42"`
}

// LoginResponse represents a successful admin login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ResumeDownloadResponse represents the public resume download link.
type ResumeDownloadResponse struct {
	DownloadURL string `json:"downloadUrl" example:"https://cdn.example.com/resume.pdf"`
}

// UploadResponse represents a stored upload.
type UploadResponse struct {
	Message      string `json:"message" example:"File uploaded successfully"`
	Filename     string `json:"filename" example:"file-8f14e45f.png"`
	OriginalName string `json:"originalName" example:"screenshot.png"`
	Size         int64  `json:"size" example:"204800"`
	URL          string `json:"url" example:"/uploads/projects/file-8f14e45f.png"`
	Type         string `json:"type" example:"project"`
}
