package service

import (
	"context"
	"strings"

	"workwire/internal/models"
	"workwire/internal/repository"
)

// PostService assembles the feed and manages post lifecycle, likes and
// comments.
type PostService struct {
	postRepo    repository.PostRepository
	connRepo    repository.ConnectionRepository
	commentRepo repository.CommentRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, connRepo repository.ConnectionRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		connRepo:    connRepo,
		commentRepo: commentRepo,
	}
}

// GetFeed returns the page of posts visible to userID, newest first: posts by
// the caller or their accepted connections, plus everyone's public posts.
// The returned total is the count of all posts in the system, not the count
// of visible posts, so late pages may come back empty while a next pointer is
// still advertised.
func (s *PostService) GetFeed(ctx context.Context, userID uint, page, limit int) ([]models.PostView, int64, models.Pagination, error) {
	connectedIDs, err := s.connRepo.GetConnectedUserIDs(ctx, userID)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	visibleIDs := append(connectedIDs, userID)

	posts, err := s.postRepo.GetFeed(ctx, visibleIDs, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View())
	}
	return views, total, models.BuildPagination(page, limit, total), nil
}

// GetPost returns a single post with its likes and comments loaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := post.View()
	return &view, nil
}

// GetUserPosts returns a page of posts authored by userID.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint, page, limit int) ([]models.PostView, int64, models.Pagination, error) {
	posts, err := s.postRepo.GetByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	total, err := s.postRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, models.Pagination{}, err
	}
	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View())
	}
	return views, total, models.BuildPagination(page, limit, total), nil
}

// CreatePost stores a new post for userID and returns it with author details.
func (s *PostService) CreatePost(ctx context.Context, userID uint, text string, media []string, privacy models.PostPrivacy) (*models.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Post text is required")
	}
	if privacy == "" {
		privacy = models.PostPrivacyPublic
	}
	switch privacy {
	case models.PostPrivacyPublic, models.PostPrivacyConnections, models.PostPrivacyPrivate:
	default:
		return nil, models.NewValidationError("Invalid privacy value")
	}

	post := &models.Post{
		UserID:  userID,
		Text:    text,
		Media:   media,
		Privacy: privacy,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

// UpdatePost applies edits to the caller's own post.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, text *string, media []string, privacy *models.PostPrivacy) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("Not authorized to update this post")
	}

	if text != nil {
		if strings.TrimSpace(*text) == "" {
			return nil, models.NewValidationError("Post text is required")
		}
		post.Text = *text
	}
	if media != nil {
		post.Media = media
	}
	if privacy != nil {
		switch *privacy {
		case models.PostPrivacyPublic, models.PostPrivacyConnections, models.PostPrivacyPrivate:
			post.Privacy = *privacy
		default:
			return nil, models.NewValidationError("Invalid privacy value")
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID)
}

// DeletePost removes the caller's own post together with its comments and
// likes.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("Not authorized to delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records userID's like on a post. Liking twice is a conflict.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*models.PostView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	liked, err := s.postRepo.HasLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewConflictError("Post already liked")
	}
	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID)
}

// UnlikePost removes userID's like. Unliking a post that was never liked is
// a conflict.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*models.PostView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	liked, err := s.postRepo.HasLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewConflictError("Post not liked yet")
	}
	if err := s.postRepo.Unlike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID)
}

// AddComment attaches a comment by userID to the post and returns the
// refreshed post view.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID)
}

// UpdateComment edits the caller's own comment.
func (s *PostService) UpdateComment(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("Not authorized to update this comment")
	}
	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment's author and the post's author
// may both delete it.
func (s *PostService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return models.NewUnauthorizedError("Not authorized to delete this comment")
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// GetComments returns a post's comments, newest first.
func (s *PostService) GetComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		views = append(views, models.CommentView{
			ID:        c.ID,
			Text:      c.Text,
			Author:    c.User.DisplayName(),
			AuthorID:  c.UserID,
			CreatedAt: c.CreatedAt,
		})
	}
	return views, nil
}
