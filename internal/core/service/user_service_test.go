package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo, *recordingNotifier) {
	repo := newStubUserRepo()
	notifier := &recordingNotifier{}
	return NewUserService(repo, notifier, zerolog.Nop()), repo, notifier
}

func seedUser(repo *stubUserRepo, email string) *domain.User {
	return repo.add(&domain.User{Email: email, PasswordHash: "x", FirstName: "T"})
}

func TestUserService_Follow(t *testing.T) {
	svc, repo, notifier := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	result, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}
	if result.Followers != 1 || result.Following != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	aliceNow, _ := repo.FindByID(context.Background(), alice.ID)
	bobNow, _ := repo.FindByID(context.Background(), bob.ID)
	if !aliceNow.IsFollowing(bob.ID) {
		t.Fatalf("follower's following set not updated")
	}
	if len(bobNow.FollowerIDs) != 1 || bobNow.FollowerIDs[0] != alice.ID {
		t.Fatalf("target's followers set not updated: %v", bobNow.FollowerIDs)
	}
	if notifier.follows != 1 {
		t.Fatalf("expected one follow notification, got %d", notifier.follows)
	}
}

func TestUserService_Follow_Idempotent(t *testing.T) {
	svc, repo, notifier := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	result, err := svc.Follow(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("repeat follow failed: %v", err)
	}
	if result.Followers != 1 {
		t.Fatalf("repeat follow changed follower count: %+v", result)
	}
	if notifier.follows != 1 {
		t.Fatalf("repeat follow re-notified: %d", notifier.follows)
	}
}

func TestUserService_Follow_Self(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, alice.ID); !errors.Is(err, domain.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	aliceNow, _ := repo.FindByID(context.Background(), alice.ID)
	if len(aliceNow.FollowingIDs) != 0 || len(aliceNow.FollowerIDs) != 0 {
		t.Fatalf("self-follow touched the follow sets")
	}
}

func TestUserService_Follow_MissingTarget(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Follow_SecondWriteFails(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")
	repo.failAddFollower = true

	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err == nil {
		t.Fatalf("expected error when the follower-side write fails")
	}

	// The first write already landed: the pair is asymmetric until a
	// retried Follow converges it.
	aliceNow, _ := repo.FindByID(context.Background(), alice.ID)
	bobNow, _ := repo.FindByID(context.Background(), bob.ID)
	if !aliceNow.IsFollowing(bob.ID) {
		t.Fatalf("expected the following-side write to have landed")
	}
	if len(bobNow.FollowerIDs) != 0 {
		t.Fatalf("expected the follower-side write to have failed")
	}

	repo.failAddFollower = false
	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("retried follow failed: %v", err)
	}
	bobNow, _ = repo.FindByID(context.Background(), bob.ID)
	aliceNow, _ = repo.FindByID(context.Background(), alice.ID)
	if len(bobNow.FollowerIDs) != 1 || len(aliceNow.FollowingIDs) != 1 {
		t.Fatalf("retry did not converge the pair")
	}
}

func TestUserService_Unfollow(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	result, err := svc.Unfollow(context.Background(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if result.Followers != 0 {
		t.Fatalf("unexpected counts after unfollow: %+v", result)
	}

	aliceNow, _ := repo.FindByID(context.Background(), alice.ID)
	if aliceNow.IsFollowing(bob.ID) {
		t.Fatalf("following set still contains target")
	}
}

func TestUserService_Unfollow_NotFollowing(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.Unfollow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow of an absent relationship must be a no-op, got %v", err)
	}
}

func TestUserService_GetPrivate_Ownership(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.GetPrivate(context.Background(), bob.ID, alice.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	user, err := svc.GetPrivate(context.Background(), alice.ID, alice.ID)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("private view must include the email")
	}
	if user.PasswordHash != "" {
		t.Fatalf("private view leaked the password hash")
	}
}

func TestUserService_Get_PublicView(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := repo.add(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: "x",
		Address:      "1 Main St",
		Birthday:     "1990-01-01",
	})

	user, err := svc.Get(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.Email != "" || user.Address != "" || user.Birthday != "" {
		t.Fatalf("public view leaked private fields: %+v", user)
	}
}

func TestUserService_Update_Ownership(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	name := "Eve"
	if _, err := svc.Update(context.Background(), bob.ID, alice.ID, ports.UpdateUserInput{FirstName: &name}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), alice.ID, alice.ID, ports.UpdateUserInput{FirstName: &name})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.FirstName != "Eve" {
		t.Fatalf("update did not apply: %+v", updated)
	}
}

func TestUserService_Delete_LeavesDanglingReferences(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := svc.Delete(context.Background(), bob.ID, bob.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// No cascade: alice still references the deleted account, and readers
	// skip the id when resolving.
	aliceNow, _ := repo.FindByID(context.Background(), alice.ID)
	if !aliceNow.IsFollowing(bob.ID) {
		t.Fatalf("expected the dangling reference to remain")
	}
	following, err := svc.Following(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("Following returned error: %v", err)
	}
	if len(following) != 0 {
		t.Fatalf("deleted account resolved in the following list")
	}
}

func TestUserService_Followers(t *testing.T) {
	svc, repo, _ := newUserFixture()
	alice := seedUser(repo, "alice@example.com")
	bob := seedUser(repo, "bob@example.com")

	if _, err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	followers, err := svc.Followers(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("Followers returned error: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != alice.ID {
		t.Fatalf("unexpected followers: %+v", followers)
	}
	if followers[0].Email != "" {
		t.Fatalf("followers list leaked email addresses")
	}
}
