package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// CommentService orchestrates the comment lifecycle.
type CommentService struct {
	comments ports.CommentRepository
	tasks    ports.TaskRepository
	users    ports.UserRepository
	activity ports.ActivityDispatcher
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	activity ports.ActivityDispatcher,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, tasks: tasks, users: users, activity: activity, log: log}
}

// Create persists a new comment on a task, owned by the actor.
func (s *CommentService) Create(ctx context.Context, actor domain.Actor, taskID, body string) (*domain.Comment, error) {
	author, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body cannot be empty", domain.ErrValidation)
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		Body:      body,
		AuthorID:  author.ID,
		TaskID:    task.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to create comment")
		return nil, err
	}

	metrics.CommentsTotal.WithLabelValues("created").Inc()
	s.record(domain.ActivityEntry{
		TaskID:  task.ID,
		ActorID: author.ID,
		Action:  domain.ActivityCommentAdded,
	})
	return created, nil
}

// Edit overwrites a comment's body. Only the author may edit.
func (s *CommentService) Edit(ctx context.Context, actor domain.Actor, commentID, body string) (*domain.Comment, error) {
	comment, resolved, err := s.loadCommentAndActor(ctx, actor, commentID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body cannot be empty", domain.ErrValidation)
	}

	if d := domain.CanEditComment(resolved, comment); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("edit_comment", d.Reason).Inc()
		return nil, domain.ErrForbidden
	}

	updated, err := s.comments.UpdateBody(ctx, commentID, body)
	if err != nil {
		return nil, err
	}

	metrics.CommentsTotal.WithLabelValues("edited").Inc()
	s.record(domain.ActivityEntry{
		TaskID:  updated.TaskID,
		ActorID: resolved.ID,
		Action:  domain.ActivityCommentEdited,
	})
	return updated, nil
}

// Delete removes a comment permanently. Authors may delete their own; admins
// may delete any.
func (s *CommentService) Delete(ctx context.Context, actor domain.Actor, commentID string) error {
	comment, resolved, err := s.loadCommentAndActor(ctx, actor, commentID)
	if err != nil {
		return err
	}

	if d := domain.CanDeleteComment(resolved, comment); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("delete_comment", d.Reason).Inc()
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	metrics.CommentsTotal.WithLabelValues("deleted").Inc()
	s.record(domain.ActivityEntry{
		TaskID:  comment.TaskID,
		ActorID: resolved.ID,
		Action:  domain.ActivityCommentDeleted,
	})

	s.log.Info().
		Str("comment_id", commentID).
		Str("actor_id", resolved.ID).
		Str("actor_role", string(resolved.Role)).
		Msg("comment deleted")
	return nil
}

func (s *CommentService) List(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

func (s *CommentService) loadCommentAndActor(ctx context.Context, actor domain.Actor, commentID string) (*domain.Comment, domain.Actor, error) {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	return comment, domain.Actor{ID: user.ID, Role: user.Role}, nil
}

func (s *CommentService) record(entry domain.ActivityEntry) {
	if s.activity == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	s.activity.Enqueue(entry)
}
