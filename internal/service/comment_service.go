package service

import (
	"context"

	"socialite/internal/models"
	"socialite/internal/repository"
	"socialite/internal/validation"
)

// CommentService provides comment creation, listing and deletion. Comments
// live and die independently of the parent post's other fields.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment attaches a comment to an existing post.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	if err := validation.ValidatePostText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.postRepo.GetByID(ctx, postID, ""); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if _, err := s.postRepo.GetByID(ctx, postID, ""); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, callerID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != callerID {
		return models.NewUnauthorizedError("Only the author can delete this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
