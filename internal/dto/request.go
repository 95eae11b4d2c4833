package dto

// TrackEventRequest represents a public tracking request. Client metadata
// (user agent, referrer, address) is never accepted here; it is derived
// from the request itself so payloads cannot spoof the analytics trail.
type TrackEventRequest struct {
	Type      string         `json:"type" binding:"required" example:"page_view"`
	Page      string         `json:"page,omitempty" example:"/projects"`
	ProjectID string         `json:"projectId,omitempty" example:"665f1c2e8b3e4a0d9c1b2a3f"`
	BlogID    string         `json:"blogId,omitempty" example:"665f1c2e8b3e4a0d9c1b2a40"`
	SessionID string         `json:"sessionId,omitempty" example:"sess_4f9a"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// DashboardRequest represents a dashboard query. Period is a window size
// in days ending now.
type DashboardRequest struct {
	Period int `form:"period,default=30" example:"30"`
}

// DetailedAnalyticsRequest represents a raw event listing query. All
// filters are optional and conjunctive. Dates accept "2006-01-02" or
// RFC 3339.
type DetailedAnalyticsRequest struct {
	Type      string `form:"type" example:"contact_form"`
	StartDate string `form:"startDate" example:"2025-08-01"`
	EndDate   string `form:"endDate" example:"2025-08-31"`
	Page      int64  `form:"page,default=1" example:"1"`
	Limit     int64  `form:"limit,default=50" example:"50"`
}

// BlogListRequest represents a public blog listing query.
type BlogListRequest struct {
	Page     int64  `form:"page,default=1" example:"1"`
	Limit    int64  `form:"limit,default=10" example:"10"`
	Category string `form:"category" example:"golang"`
	Tag      string `form:"tag" example:"backend"`
	Search   string `form:"search" example:"generics"`
}

// AdminListRequest represents a paginated admin listing query.
type AdminListRequest struct {
	Page  int64 `form:"page,default=1" example:"1"`
	Limit int64 `form:"limit,default=10" example:"10"`
}

// LoginRequest represents an admin login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

// SkillOrderItem is one entry of a bulk reorder request.
type SkillOrderItem struct {
	ID    string `json:"id" binding:"required" example:"665f1c2e8b3e4a0d9c1b2a41"`
	Order int    `json:"order" example:"3"`
}

// ReorderSkillsRequest represents a bulk skill reorder.
type ReorderSkillsRequest struct {
	Skills []SkillOrderItem `json:"skills" binding:"required,min=1,dive"`
}

// SetResumeRequest represents an admin resume URL update.
type SetResumeRequest struct {
	ResumeURL string `json:"resumeUrl" binding:"required" example:"https://cdn.example.com/resume.pdf"`
}
