package types

import (
	shared "ripple-shared"
)

// ApiClient is the full surface of the Ripple backend. The api package
// implements it; auth and the TUIs consume it through this interface so the
// packages don't import each other.
type ApiClient interface {
	// auth
	Register(req shared.RegisterRequest) (*shared.AuthResponse, *shared.ApiError)
	SignIn(req shared.LoginRequest) (*shared.AuthResponse, *shared.ApiError)

	// users
	GetMe() (*shared.User, *shared.ApiError)
	ListUsers() ([]*shared.User, *shared.ApiError)
	GetUser(userId int64) (*shared.User, *shared.ApiError)
	UpdateUser(userId int64, req shared.UpdateUserRequest) (*shared.User, *shared.ApiError)
	DeleteUser(userId int64) *shared.ApiError

	// blogs
	CreateBlog(req shared.CreateBlogRequest) (*shared.Blog, *shared.ApiError)
	CreateBlogWithMedia(req shared.CreateBlogRequest, files []MediaUpload) (*shared.Blog, *shared.ApiError)
	GetBlog(blogId int64) (*shared.Blog, *shared.ApiError)
	UpdateBlog(blogId int64, req shared.UpdateBlogRequest) (*shared.Blog, *shared.ApiError)
	DeleteBlog(blogId int64) *shared.ApiError
	ListBlogsByUser(userId int64) ([]*shared.Blog, *shared.ApiError)
	GetFeed() ([]*shared.Blog, *shared.ApiError)

	// comments
	AddComment(blogId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	UpdateComment(commentId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	DeleteComment(commentId int64) *shared.ApiError
	ListCommentsByBlog(blogId int64) ([]*shared.Comment, *shared.ApiError)
	ListCommentsByUser(userId int64) ([]*shared.Comment, *shared.ApiError)

	// likes
	Like(blogId int64) *shared.ApiError
	Unlike(blogId int64) *shared.ApiError
	GetLikeStatus(blogId int64) (*shared.LikeStatus, *shared.ApiError)

	// media
	UploadMedia(blogId int64, files []MediaUpload) ([]*shared.Media, *shared.ApiError)
	ListMediaByBlog(blogId int64) ([]*shared.Media, *shared.ApiError)

	// notifications
	ListNotifications() ([]*shared.Notification, *shared.ApiError)
	GetUnreadNotificationCount() (int, *shared.ApiError)
	MarkNotificationRead(notificationId int64) *shared.ApiError
	DeleteNotification(notificationId int64) *shared.ApiError

	// follows
	Follow(userId int64) *shared.ApiError
	Unfollow(userId int64) *shared.ApiError
	GetFollowingIds() ([]int64, *shared.ApiError)
	GetFollowCounts(userId int64) (*shared.FollowCounts, *shared.ApiError)

	// reports
	CreateReport(req shared.CreateReportRequest) (*shared.ReportResponse, *shared.ApiError)

	// admin
	ListAdminUsers() ([]*shared.User, *shared.ApiError)
	ListAdminPosts() ([]*shared.Blog, *shared.ApiError)
	ListAdminReports() ([]*shared.AdminReportItem, *shared.ApiError)
	GetAdminReportsCount() (int, *shared.ApiError)
	GetAdminFollowerCounts() ([]*shared.UserFollowerCount, *shared.ApiError)
	UpdateUserRole(userId int64, role string) (*shared.User, *shared.ApiError)
	UpdateUserStatus(userId int64, status string) (*shared.User, *shared.ApiError)
	UpdateBlogStatus(blogId int64, status string) (*shared.Blog, *shared.ApiError)
	DeleteReport(reportId int64) *shared.ApiError
}

// MediaUpload is one validated file ready to be sent as a multipart part.
type MediaUpload struct {
	Name string
	MIME string
	Data []byte
}
