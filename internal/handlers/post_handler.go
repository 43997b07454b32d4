package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	post, err := h.postService.CreatePost(req.AuthorID, req.Content, req.Type)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPostResponse(post))
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponses(posts))
}

func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	post, err := h.postService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponse(post))
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.PostUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	post, err := h.postService.EditPost(id, req.AuthorID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewPostResponse(post))
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.postService.DeletePost(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "post removed"})
}

func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	comment, err := h.postService.CommentOn(id, req.AuthorID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCommentResponse(comment))
}

func (h *PostHandler) ListComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	comments, err := h.postService.ListComments(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCommentResponses(comments))
}

func (h *PostHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	comment, err := h.postService.EditComment(id, req.AuthorID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCommentResponse(comment))
}

func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.postService.DeleteComment(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "comment removed"})
}
