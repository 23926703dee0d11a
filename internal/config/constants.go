package config

import "time"

// AppName is the product name shown to users.
const AppName = "うちトピ"

// Document store collection names.
const (
	CollectionUsers         = "users"
	CollectionFamilies      = "families"
	CollectionMembers       = "members"
	CollectionThreads       = "threads"
	CollectionMessages      = "messages"
	CollectionReads         = "reads"
	CollectionTopics        = "topics"
	CollectionChecklist     = "checklist"
	CollectionComments      = "comments"
	CollectionActivity      = "activity"
	CollectionNotifications = "notifications"
	CollectionInvites       = "invites"
)

// Collections lists every collection the document store accepts.
var Collections = []string{
	CollectionUsers,
	CollectionFamilies,
	CollectionMembers,
	CollectionThreads,
	CollectionMessages,
	CollectionReads,
	CollectionTopics,
	CollectionChecklist,
	CollectionComments,
	CollectionActivity,
	CollectionNotifications,
	CollectionInvites,
}

// Local settings keys.
const (
	KeyIsFirstLaunch       = "isFirstLaunch"
	KeySelectedFamilyID    = "selectedFamilyId"
	KeyNotificationEnabled = "notificationEnabled"
	KeyTheme               = "theme"
	KeyLanguage            = "language"
)

// In-process event names.
const (
	EventUserDidLogin         = "userDidLogin"
	EventUserDidLogout        = "userDidLogout"
	EventFamilyDidChange      = "familyDidChange"
	EventNetworkStatusChanged = "networkStatusChanged"
)

const (
	InviteCodeTTL      = 24 * time.Hour
	MessageCacheExpiry = time.Hour
)

// Field and resource limits.
const (
	MaxFamilyMembers         = 20
	MaxFamilyNameLength      = 50
	MaxDisplayNameLength     = 30
	MaxNicknameLength        = 30
	MaxMessageLength         = 1000
	MaxTaskTitleLength       = 100
	MaxTaskDescriptionLength = 500
	MaxImagesPerMessage      = 10
	InviteCodeLength         = 6
)

// MaxAttachmentSize is the largest accepted attachment in bytes (10MB).
const MaxAttachmentSize int64 = 10 * 1024 * 1024

// Page sizes.
const (
	DefaultPageSize       = 20
	MessagesPageSize      = 50
	TasksPageSize         = 30
	NotificationsPageSize = 20
)

// Regular expressions.
const (
	EmailPattern      = `^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`
	InviteCodePattern = `^[A-Z0-9]{6}$`
)

// Date layouts. Equivalent CLDR patterns are noted alongside.
const (
	LayoutFull      = "2006年1月2日 15:04" // yyyy年M月d日 HH:mm
	LayoutShort     = "1/2 15:04"        // M/d HH:mm
	LayoutTime      = "15:04"            // HH:mm
	LayoutDate      = "2006/01/02"       // yyyy/MM/dd
	LayoutMonthDay  = "1月2日"             // M月d日
	LayoutYearMonth = "2006年1月"          // yyyy年M月
)

// TimeZone is the location every date is rendered in.
const TimeZone = "Asia/Tokyo"
