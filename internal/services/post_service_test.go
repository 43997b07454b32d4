package services

import (
	"strings"
	"testing"

	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture() (*PostService, *fakePostRepo, *fakeCommentRepo, *fakeUserRepo, *fakeCatalogRepo) {
	posts := newFakePostRepo()
	comments := newFakeCommentRepo()
	users := newFakeUserRepo()
	catalogs := newFakeCatalogRepo()
	return NewPostService(posts, comments, users), posts, comments, users, catalogs
}

func TestCreatePost(t *testing.T) {
	svc, posts, _, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))

	post, err := svc.CreatePost(author.ID, "new single out friday", "text")
	require.NoError(t, err)
	assert.Equal(t, catalog.PostText, post.Type)
	assert.False(t, post.PublishedAt.IsZero())
	assert.Equal(t, 1, posts.createCalls)
}

func TestCreatePostContentRules(t *testing.T) {
	svc, posts, _, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))

	_, err := svc.CreatePost(author.ID, "   ", "TEXT")
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))

	_, err = svc.CreatePost(author.ID, strings.Repeat("a", 501), "TEXT")
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))

	_, err = svc.CreatePost(author.ID, "ok", "VIDEO")
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	assert.Equal(t, 0, posts.createCalls)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	svc, _, _, _, _ := newPostFixture()

	_, err := svc.CreatePost(99, "hello", "TEXT")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestEditPost(t *testing.T) {
	svc, posts, _, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))
	other := users.add(musicianUser(catalogs, 2, "Jones"))
	post := posts.add(models.Post{AuthorID: author.ID, Content: "v1", Type: catalog.PostText})

	_, err := svc.EditPost(post.ID, other.ID, "v2")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	updated, err := svc.EditPost(post.ID, author.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
}

func TestCommentOnPost(t *testing.T) {
	svc, posts, comments, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))
	post := posts.add(models.Post{AuthorID: author.ID, Content: "hello", Type: catalog.PostText})

	comment, err := svc.CommentOn(post.ID, author.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, 1, comments.createCalls)

	list, err := svc.ListComments(post.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommentContentRules(t *testing.T) {
	svc, posts, comments, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))
	post := posts.add(models.Post{AuthorID: author.ID, Content: "hello", Type: catalog.PostText})

	_, err := svc.CommentOn(post.ID, author.ID, " ")
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))

	_, err = svc.CommentOn(post.ID, author.ID, strings.Repeat("b", 301))
	assert.True(t, apperr.IsKind(err, apperr.KindRuleViolation))

	_, err = svc.CommentOn(42, author.ID, "where did the post go")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	assert.Equal(t, 0, comments.createCalls)
}

func TestDeletePost(t *testing.T) {
	svc, posts, _, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))
	other := users.add(musicianUser(catalogs, 2, "Jones"))
	post := posts.add(models.Post{AuthorID: author.ID, Content: "hello", Type: catalog.PostText})

	err := svc.DeletePost(post.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Equal(t, 0, posts.deleteCalls)

	require.NoError(t, svc.DeletePost(post.ID, author.ID))
	assert.Equal(t, 1, posts.deleteCalls)
}

func TestEditAndDeleteComment(t *testing.T) {
	svc, posts, _, users, catalogs := newPostFixture()
	author := users.add(musicianUser(catalogs, 1, "Strummer"))
	other := users.add(musicianUser(catalogs, 2, "Jones"))
	post := posts.add(models.Post{AuthorID: author.ID, Content: "hello", Type: catalog.PostText})

	comment, err := svc.CommentOn(post.ID, author.ID, "first")
	require.NoError(t, err)

	_, err = svc.EditComment(comment.ID, other.ID, "hijack")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	updated, err := svc.EditComment(comment.ID, author.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	err = svc.DeleteComment(comment.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	require.NoError(t, svc.DeleteComment(comment.ID, author.ID))

	list, err := svc.ListComments(post.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
