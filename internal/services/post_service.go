package services

import (
	"strings"
	"time"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

const (
	maxPostContentLen    = 500
	maxCommentContentLen = 300
)

// PostService manages posts and their comments. Post deletion cascades to
// comments inside one transaction.
type PostService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, comments: comments, users: users}
}

func (s *PostService) CreatePost(authorID uint64, content, postType string) (*models.Post, error) {
	author, ok, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}

	if strings.TrimSpace(content) == "" {
		return nil, apperr.RuleViolation("post content cannot be empty")
	}
	if len(content) > maxPostContentLen {
		return nil, apperr.RuleViolation("post content exceeds the 500 character limit")
	}

	parsed, valid := catalog.ParsePostType(postType)
	if !valid {
		return nil, apperr.BadRequest("invalid post type")
	}

	post := &models.Post{
		AuthorID:    author.ID,
		Author:      *author,
		Content:     content,
		Type:        parsed,
		PublishedAt: time.Now(),
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost overwrites the content and returns the post with its current
// comment list.
func (s *PostService) EditPost(postID, actingUserID uint64, content string) (*models.Post, error) {
	post, ok, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("post not found")
	}

	if post.AuthorID != actingUserID {
		return nil, apperr.Forbidden("you are not allowed to edit this post")
	}

	post.Content = content
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	post.Comments, err = s.comments.FindByPost(post.ID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) CommentOn(postID, authorID uint64, content string) (*models.Comment, error) {
	author, ok, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}

	post, ok, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("post not found")
	}

	if strings.TrimSpace(content) == "" {
		return nil, apperr.RuleViolation("comment content cannot be empty")
	}
	if len(content) > maxCommentContentLen {
		return nil, apperr.RuleViolation("comment content exceeds the 300 character limit")
	}

	comment := &models.Comment{
		AuthorID:  author.ID,
		Author:    *author,
		PostID:    post.ID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) ListComments(postID uint64) ([]models.Comment, error) {
	_, ok, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	return s.comments.FindByPost(postID)
}

func (s *PostService) ListAll() ([]models.Post, error) {
	return s.posts.FindAll()
}

func (s *PostService) GetByID(postID uint64) (*models.Post, error) {
	post, ok, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("post not found")
	}
	return post, nil
}

func (s *PostService) DeletePost(postID, actingUserID uint64) error {
	post, ok, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("post not found")
	}

	if post.AuthorID != actingUserID {
		return apperr.Forbidden("you are not allowed to delete this post")
	}

	return s.posts.DeleteCascading(post)
}

func (s *PostService) EditComment(commentID, actingUserID uint64, content string) (*models.Comment, error) {
	comment, ok, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("comment not found")
	}

	if comment.AuthorID != actingUserID {
		return nil, apperr.Forbidden("you are not allowed to edit this comment")
	}

	comment.Content = content
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) DeleteComment(commentID, actingUserID uint64) error {
	comment, ok, err := s.comments.FindByID(commentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("comment not found")
	}

	if comment.AuthorID != actingUserID {
		return apperr.Forbidden("you are not allowed to delete this comment")
	}

	return s.comments.Delete(comment)
}
