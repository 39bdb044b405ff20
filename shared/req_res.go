package shared

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

type CreateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status,omitempty"`
}

type UpdateBlogRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Status  string `json:"status,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type LikeStatus struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type FollowCounts struct {
	Following int `json:"following"`
	Followers int `json:"followers"`
}

type CreateReportRequest struct {
	BlogId  int64        `json:"blogId"`
	Reason  ReportReason `json:"reason"`
	Details string       `json:"details,omitempty"`
}

type ReportResponse struct {
	ReportId int64  `json:"reportId"`
	Message  string `json:"message"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type UserFollowerCount struct {
	UserId int64 `json:"userId"`
	Count  int   `json:"count"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}

type UpdateBlogStatusRequest struct {
	Status string `json:"status"`
}
