package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrLikeNotFound         = errors.New("like not found")
	ErrLearningPlanNotFound = errors.New("learning plan not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrForbidden          = errors.New("access forbidden")
)
