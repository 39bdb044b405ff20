package shared

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"

	UserStatusActive = "ACTIVE"
	UserStatusBanned = "BANNED"

	BlogStatusActive = "ACTIVE"
	BlogStatusHidden = "HIDDEN"
)

type User struct {
	UserId    int64     `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return "@" + u.UserName
	}
	return name
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Blog struct {
	Id           int64      `json:"idBlog"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Status       string     `json:"status,omitempty"`
	CommentCount int        `json:"commentCount"`
	LikeCount    int        `json:"likeCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`

	// author fields--the feed endpoints flatten these, older endpoints nest
	// the full user
	UserId        int64  `json:"userId,omitempty"`
	UserName      string `json:"userName,omitempty"`
	UserFirstName string `json:"userFirstName,omitempty"`
	UserLastName  string `json:"userLastName,omitempty"`
	User          *User  `json:"user,omitempty"`

	MediaFiles []*Media `json:"mediaFiles,omitempty"`
}

// AuthorName resolves the author display name across the flattened and
// nested response shapes.
func (b *Blog) AuthorName() string {
	first := b.UserFirstName
	last := b.UserLastName
	username := b.UserName
	if b.User != nil {
		if first == "" {
			first = b.User.FirstName
		}
		if last == "" {
			last = b.User.LastName
		}
		if username == "" {
			username = b.User.UserName
		}
	}
	if first != "" || last != "" {
		name := first
		if last != "" {
			if name != "" {
				name += " "
			}
			name += last
		}
		return name
	}
	if username != "" {
		return "@" + username
	}
	return "Unknown user"
}

func (b *Blog) AuthorId() int64 {
	if b.UserId != 0 {
		return b.UserId
	}
	if b.User != nil {
		return b.User.UserId
	}
	return 0
}

type Comment struct {
	Id        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	User      *User      `json:"user,omitempty"`
}

type Media struct {
	Id        int64     `json:"id"`
	Url       string    `json:"url"`
	MediaType string    `json:"mediaType,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Like struct {
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationType string

const (
	NotificationLike    NotificationType = "LIKE"
	NotificationComment NotificationType = "COMMENT"
	NotificationFollow  NotificationType = "FOLLOW"
)

type Notification struct {
	Id            int64            `json:"id"`
	Type          NotificationType `json:"type"`
	Message       string           `json:"message"`
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"createdAt"`
	ActorUserId   *int64           `json:"actorUserId,omitempty"`
	ActorUserName *string          `json:"actorUserName,omitempty"`
	BlogId        *int64           `json:"blogId,omitempty"`
}

type ReportReason string

const (
	ReportReasonHarassment ReportReason = "HARASSMENT_BULLYING"
	ReportReasonSpam       ReportReason = "SPAM_SCAM"
	ReportReasonHateSpeech ReportReason = "HATE_SPEECH"
	ReportReasonViolence   ReportReason = "VIOLENCE_THREATS"
	ReportReasonSexual     ReportReason = "SEXUAL_CONTENT"
	ReportReasonCopyright  ReportReason = "COPYRIGHT_IP"
	ReportReasonOther      ReportReason = "OTHER"
)

var ReportReasons = []ReportReason{
	ReportReasonHarassment,
	ReportReasonSpam,
	ReportReasonHateSpeech,
	ReportReasonViolence,
	ReportReasonSexual,
	ReportReasonCopyright,
	ReportReasonOther,
}

var ReportReasonLabels = map[ReportReason]string{
	ReportReasonHarassment: "Harassment / Bullying",
	ReportReasonSpam:       "Spam / Scam",
	ReportReasonHateSpeech: "Hate speech",
	ReportReasonViolence:   "Violence / Threats",
	ReportReasonSexual:     "Sexual content",
	ReportReasonCopyright:  "Copyright / IP",
	ReportReasonOther:      "Other",
}

type AdminReportItem struct {
	ReportId         int64        `json:"reportId"`
	Reason           ReportReason `json:"reason"`
	Details          string       `json:"details,omitempty"`
	ReporterId       int64        `json:"reporterId"`
	ReporterName     string       `json:"reporterName,omitempty"`
	ReportedUserId   int64        `json:"reportedUserId"`
	ReportedUserName string       `json:"reportedUserName,omitempty"`
	BlogId           int64        `json:"blogId"`
	BlogTitle        string       `json:"blogTitle,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
