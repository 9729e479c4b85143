package service

import (
	"context"
	"io"
	"mime/multipart"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/params"
	"crewhub/core/queue"
	"crewhub/core/storage"
	"crewhub/modules/board/dto"
	"crewhub/modules/board/entity"
	"crewhub/modules/board/repository"

	memberservice "crewhub/modules/member/service"
	notificationservice "crewhub/modules/notification/service"

	"github.com/google/uuid"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type BoardService struct {
	repo     repository.BoardRepositoryInterface
	groupSvc memberservice.GroupServiceInterface
	storage  storage.ObjectStorageInterface
	notifier notificationservice.NotificationServiceInterface
}

type BoardServiceInterface interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError)
	GetPost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, *errors.AppError)
	GetPosts(ctx context.Context, groupID uuid.UUID, params params.QueryParams) (*dto.PaginatedPostResponse, *errors.AppError)
	UpdatePost(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdatePostRequest) *errors.AppError
	DeletePost(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError
	UploadAttachment(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader) (*dto.UploadResponse, *errors.AppError)
	CreateComment(ctx context.Context, authorID uuid.UUID, postID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, *errors.AppError)
	GetComments(ctx context.Context, postID uuid.UUID) ([]dto.CommentResponse, *errors.AppError)
	DeleteComment(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError
}

func NewBoardService(
	repo repository.BoardRepositoryInterface,
	groupSvc memberservice.GroupServiceInterface,
	store storage.ObjectStorageInterface,
	notifier notificationservice.NotificationServiceInterface,
) BoardServiceInterface {
	return &BoardService{repo: repo, groupSvc: groupSvc, storage: store, notifier: notifier}
}

func (s *BoardService) CreatePost(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, req.GroupID, authorID); appErr != nil {
		return nil, appErr
	}

	post := &entity.Post{
		GroupID:  req.GroupID,
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if req.AttachmentURL != "" {
		post.AttachmentURL = &req.AttachmentURL
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create post failed", err)
	}

	s.notifyGroup(ctx, post)

	return dto.ToPostResponse(post), nil
}

// notifyGroup fans a new-post notification out to every member except the
// author. Delivery failures never fail the post creation.
func (s *BoardService) notifyGroup(ctx context.Context, post *entity.Post) {
	members, appErr := s.groupSvc.GetMembers(ctx, post.GroupID)
	if appErr != nil {
		return
	}
	link := "/posts/" + post.ID.String()
	for _, m := range members.Members {
		if m.UserID == post.AuthorID {
			continue
		}
		s.notifier.Notify(queue.NotificationDispatchPayload{
			UserID:  m.UserID,
			Type:    "board",
			Title:   "New post",
			Message: post.Title,
			Link:    link,
			Data:    map[string]any{"post_id": post.ID.String(), "group_id": post.GroupID.String()},
		})
	}
}

func (s *BoardService) GetPost(ctx context.Context, id uuid.UUID) (*dto.PostResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get post failed", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "post not found", nil)
	}
	return dto.ToPostResponse(post), nil
}

func (s *BoardService) GetPosts(ctx context.Context, groupID uuid.UUID, params params.QueryParams) (*dto.PaginatedPostResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	posts, err := s.repo.GetPosts(ctx, groupID, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get posts failed", err)
	}

	items := make([]dto.PostResponse, len(posts.Items))
	for i, p := range posts.Items {
		items[i] = *dto.ToPostResponse(&p)
	}

	totalPages := 0
	if posts.PageSize > 0 {
		totalPages = (posts.TotalItems + posts.PageSize - 1) / posts.PageSize
	}

	return &dto.PaginatedPostResponse{
		Items:      items,
		TotalItems: posts.TotalItems,
		TotalPages: totalPages,
		PageNumber: posts.PageNumber,
		PageSize:   posts.PageSize,
	}, nil
}

func (s *BoardService) UpdatePost(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdatePostRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	post, appErr := s.requirePostAccess(ctx, actorID, id)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.UpdatePost(ctx, post.ID, req.Title, req.Content); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update post failed", err)
	}
	return nil
}

func (s *BoardService) DeletePost(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	post, appErr := s.requirePostAccess(ctx, actorID, id)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.DeletePost(ctx, post.ID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete post failed", err)
	}

	// Attachment cleanup is best effort; an orphaned object is harmless.
	if post.AttachmentURL != nil {
		if key := storage.KeyFromURL(*post.AttachmentURL); key != "" {
			if err := s.storage.Delete(ctx, key); err != nil {
				logger.Warn("BoardService:DeletePost - attachment cleanup failed", "key", key)
			}
		}
	}
	return nil
}

func (s *BoardService) UploadAttachment(ctx context.Context, userID uuid.UUID, header *multipart.FileHeader) (*dto.UploadResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if header.Size > maxAttachmentSize {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "attachment too large", nil)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "open attachment failed", err)
	}
	defer file.Close()

	url, err := s.storage.Upload(ctx, "board/"+userID.String(), header.Filename, header.Header.Get("Content-Type"), io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "upload attachment failed", err)
	}
	return &dto.UploadResponse{URL: url}, nil
}

func (s *BoardService) CreateComment(ctx context.Context, authorID uuid.UUID, postID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	post, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get post failed", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "post not found", nil)
	}

	if appErr := s.groupSvc.RequireMember(ctx, post.GroupID, authorID); appErr != nil {
		return nil, appErr
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create comment failed", err)
	}
	return dto.ToCommentResponse(comment), nil
}

func (s *BoardService) GetComments(ctx context.Context, postID uuid.UUID) ([]dto.CommentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comments, err := s.repo.GetComments(ctx, postID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get comments failed", err)
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = *dto.ToCommentResponse(&c)
	}
	return responses, nil
}

func (s *BoardService) DeleteComment(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	comment, err := s.repo.GetCommentByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get comment failed", err)
	}
	if comment == nil {
		return errors.NewAppError(errors.ErrNotFound, "comment not found", nil)
	}

	if comment.AuthorID != actorID {
		post, err := s.repo.GetPostByID(ctx, comment.PostID)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "get post failed", err)
		}
		if post == nil {
			return errors.NewAppError(errors.ErrNotFound, "post not found", nil)
		}
		if appErr := s.groupSvc.RequireLeader(ctx, post.GroupID, actorID); appErr != nil {
			return appErr
		}
	}

	if err := s.repo.DeleteComment(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete comment failed", err)
	}
	return nil
}

// requirePostAccess loads the post and allows the author through directly;
// anyone else must lead the owning group.
func (s *BoardService) requirePostAccess(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*entity.Post, *errors.AppError) {
	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get post failed", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "post not found", nil)
	}
	if post.AuthorID != actorID {
		if appErr := s.groupSvc.RequireLeader(ctx, post.GroupID, actorID); appErr != nil {
			return nil, appErr
		}
	}
	return post, nil
}
