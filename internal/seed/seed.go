// Package seed populates the database with demo data for local development.
package seed

import (
	"context"
	"fmt"
	"strings"

	"parlor/internal/models"
	"parlor/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the plaintext password for every seeded account.
const DemoPassword = "parlor-demo"

// Options controls how much demo data Run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
}

// DefaultOptions returns a small but connected demo dataset.
func DefaultOptions() Options {
	return Options{Users: 8, PostsPerUser: 3, CommentsPerPost: 2}
}

// Run seeds users, friend edges, posts and comments through the repository
// layer, so seeded rows pass the same sanitization as real traffic.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:  Username(i),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Password:  string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Username, err)
		}
		users = append(users, user)
	}

	// Each user befriends the next one, so every stream shows a mix of
	// own and friends' posts.
	for i, user := range users {
		friend := users[(i+1)%len(users)]
		if friend.ID == user.ID {
			continue
		}
		edge := &models.Friend{UserID: user.ID, FriendID: friend.ID}
		if err := friendRepo.Create(ctx, edge); err != nil {
			return fmt.Errorf("failed to seed friend edge: %w", err)
		}
	}

	for _, user := range users {
		for p := 0; p < opts.PostsPerUser; p++ {
			post := &models.Post{
				UserID:  user.ID,
				Content: gofakeit.Sentence(12),
			}
			if err := postRepo.Create(ctx, post); err != nil {
				return fmt.Errorf("failed to seed post: %w", err)
			}

			for c := 0; c < opts.CommentsPerPost; c++ {
				author := users[gofakeit.Number(0, len(users)-1)]
				comment := &models.Comment{
					PostID:  post.ID,
					UserID:  author.ID,
					Content: gofakeit.Sentence(8),
				}
				if err := commentRepo.Create(ctx, comment); err != nil {
					return fmt.Errorf("failed to seed comment: %w", err)
				}
			}
		}
	}

	return nil
}

// Username builds a deterministic, alphanumeric demo username.
func Username(i int) string {
	name := strings.ToLower(gofakeit.FirstName())
	return fmt.Sprintf("%s%d", name, 100+i)
}
