package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// In-memory fakes shared by the service tests. They reproduce the store
// semantics the services rely on: sentinel errors for missing documents,
// set semantics for the follow graph, uniqueness for likes.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int

	failAddFollower bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *u
	if clone.ID == "" {
		clone.ID = "user_" + strconv.Itoa(r.seq)
	}
	if clone.FollowingIDs == nil {
		clone.FollowingIDs = []string{}
	}
	if clone.FollowerIDs == nil {
		clone.FollowerIDs = []string{}
	}
	r.users[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	for _, u := range r.users {
		if u.Email == user.Email {
			r.mu.Unlock()
			return nil, domain.ErrEmailTaken
		}
	}
	r.mu.Unlock()
	return r.add(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	clone.FollowingIDs = append([]string{}, u.FollowingIDs...)
	clone.FollowerIDs = append([]string{}, u.FollowerIDs...)
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	clone.FollowingIDs = stored.FollowingIDs
	clone.FollowerIDs = stored.FollowerIDs
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func addToSet(set []string, id string) []string {
	for _, v := range set {
		if v == id {
			return set
		}
	}
	return append(set, id)
}

func removeFromSet(set []string, id string) []string {
	out := set[:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (r *stubUserRepo) AddFollowing(_ context.Context, userID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FollowingIDs = addToSet(u.FollowingIDs, targetID)
	return nil
}

func (r *stubUserRepo) RemoveFollowing(_ context.Context, userID, targetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FollowingIDs = removeFromSet(u.FollowingIDs, targetID)
	return nil
}

func (r *stubUserRepo) AddFollower(_ context.Context, userID, followerID string) error {
	if r.failAddFollower {
		return errors.New("write failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FollowerIDs = addToSet(u.FollowerIDs, followerID)
	return nil
}

func (r *stubUserRepo) RemoveFollower(_ context.Context, userID, followerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FollowerIDs = removeFromSet(u.FollowerIDs, followerID)
	return nil
}

type stubPostRepo struct {
	mu    sync.Mutex
	posts map[string]*domain.Post
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *post
	if clone.ID == "" {
		clone.ID = "post_" + strconv.Itoa(r.seq)
	}
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context, userID string) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Post{}
	for _, p := range r.posts {
		if userID != "" && p.UserID != userID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*domain.Comment
	seq      int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *comment
	if clone.ID == "" {
		clone.ID = "comment_" + strconv.Itoa(r.seq)
	}
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) FindByPostID(_ context.Context, postID string) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[comment.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

type stubLikeRepo struct {
	mu    sync.Mutex
	likes map[string]*domain.Like
	seq   int
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: make(map[string]*domain.Like)}
}

func (r *stubLikeRepo) Create(_ context.Context, like *domain.Like) (*domain.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes {
		if l.PostID == like.PostID && l.UserID == like.UserID {
			return nil, errors.New("duplicate like")
		}
	}
	r.seq++
	clone := *like
	if clone.ID == "" {
		clone.ID = "like_" + strconv.Itoa(r.seq)
	}
	r.likes[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLikeRepo) FindByPostID(_ context.Context, postID string) ([]*domain.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Like{}
	for _, l := range r.likes {
		if l.PostID == postID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLikeRepo) FindByPostAndUser(_ context.Context, postID, userID string) (*domain.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes {
		if l.PostID == postID && l.UserID == userID {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrLikeNotFound
}

func (r *stubLikeRepo) DeleteByPostAndUser(_ context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.likes {
		if l.PostID == postID && l.UserID == userID {
			delete(r.likes, id)
			return nil
		}
	}
	return nil
}

type stubNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
	seq           int

	failCreate bool
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{}
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.failCreate {
		return nil, errors.New("write failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *n
	if clone.ID == "" {
		clone.ID = "notif_" + strconv.Itoa(r.seq)
	}
	r.notifications = append(r.notifications, &clone)
	out := clone
	return &out, nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *stubNotificationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

// recordingNotifier counts notifier calls without side effects.
type recordingNotifier struct {
	comments int
	likes    int
	follows  int
}

func (n *recordingNotifier) CommentCreated(_ context.Context, _ string, _ *domain.Post, _ *domain.Comment) {
	n.comments++
}

func (n *recordingNotifier) PostLiked(_ context.Context, _ string, _ *domain.Post) {
	n.likes++
}

func (n *recordingNotifier) UserFollowed(_ context.Context, _, _ string) {
	n.follows++
}

// stubDedup is an in-memory DedupChecker.
type stubDedup struct {
	mu     sync.Mutex
	seen   map[string]bool
	isErr  error
	marked int
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(recipientID, actorID, kind, refID string) string {
	return recipientID + "/" + actorID + "/" + kind + "/" + refID
}

func (d *stubDedup) IsDuplicate(_ context.Context, recipientID, actorID, kind, refID string) (bool, error) {
	if d.isErr != nil {
		return false, d.isErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[d.key(recipientID, actorID, kind, refID)], nil
}

func (d *stubDedup) Mark(_ context.Context, recipientID, actorID, kind, refID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[d.key(recipientID, actorID, kind, refID)] = true
	d.marked++
	return nil
}
