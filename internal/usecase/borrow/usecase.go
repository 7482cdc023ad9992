package borrow

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainAsset "assettrack-backend/internal/domain/asset"
	"assettrack-backend/internal/domain/audit"
	"assettrack-backend/internal/domain/notification"
	domainRequest "assettrack-backend/internal/domain/request"
	"assettrack-backend/internal/domain/uow"
	"assettrack-backend/pkg/id"

	"go.uber.org/zap"
)

// Usecase is the borrow workflow engine: the only writer of
// BorrowRequest.status and the only component that flips an asset between
// AVAILABLE and IN_USE. Every mutation runs inside a single unit of work with
// the affected rows locked, so concurrent callers cannot both observe a
// passing precondition.
type Usecase struct {
	requests domainRequest.Repository
	uow      uow.UnitOfWork
	log      *zap.Logger
	adminIDs []string
}

// NewUsecase: the read-only repo serves the query surface; all mutations go
// through the UoW. adminIDs receive new-request notifications.
func NewUsecase(requests domainRequest.Repository, tx uow.UnitOfWork, log *zap.Logger, adminIDs []string) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{requests: requests, uow: tx, log: log, adminIDs: adminIDs}
}

var errInvalidInput = errors.New("invalid input")

// Submit creates a PENDING request. Preconditions, checked under the locked
// asset row in one transaction: asset exists and is AVAILABLE, and no active
// request exists for the same (asset, requester) pair.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RequestDTO, error) {
	if len(in.AssetID) != 32 || len(in.RequesterID) != 32 || len(in.Note) > 2000 {
		return nil, errInvalidInput
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Assets.GetByAssetIDForUpdate(ctx, in.AssetID)
		if err != nil {
			return domainAsset.ErrNotFound
		}
		if a.Status != domainAsset.StatusAvailable {
			return domainRequest.ErrAssetUnavailable
		}

		// Duplicate guard shares the transaction with the insert below, so
		// two concurrent submissions cannot both pass.
		exists, err := r.Requests.HasActiveRequest(ctx, a.AssetID, in.RequesterID)
		if err != nil {
			return err
		}
		if exists {
			return domainRequest.ErrDuplicateRequest
		}

		br := &domainRequest.BorrowRequest{
			RequestID:   id.NewID32(),
			AssetID:     a.AssetID,
			RequesterID: in.RequesterID,
			Status:      domainRequest.StatusPending,
			Note:        in.Note,
			RequestedAt: time.Now().UTC(),
		}
		if err := r.Requests.Create(ctx, br); err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "BorrowRequest",
			EntityID:    br.RequestID,
			Action:      audit.ActionBorrowRequested,
			NewValue:    fmt.Sprintf("requester %s requested asset %s", br.RequesterID, a.AssetID),
			PerformedBy: br.RequesterID,
			PerformedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		msg := fmt.Sprintf("New borrow request %s for asset %q", br.RequestID, a.Name)
		for _, adminID := range u.adminIDs {
			u.notify(ctx, r, adminID, msg)
		}

		dto = toDTO(br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve transitions PENDING -> APPROVED and flips the asset to IN_USE.
// The asset must still be AVAILABLE at the moment of transition: multiple
// pending requests can legitimately queue on one asset, and only the first
// approval wins. On ErrAssetUnavailable the request stays PENDING.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*RequestDTO, error) {
	if len(in.RequestID) != 32 || len(in.AdminID) != 32 {
		return nil, errInvalidInput
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		br, err := r.Requests.GetByRequestIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return domainRequest.ErrNotFound
		}
		if br.Status != domainRequest.StatusPending {
			return domainRequest.ErrInvalidTransition
		}

		a, err := r.Assets.GetByAssetIDForUpdate(ctx, br.AssetID)
		if err != nil {
			return domainAsset.ErrNotFound
		}
		if a.Status != domainAsset.StatusAvailable {
			return domainRequest.ErrAssetUnavailable
		}

		now := time.Now().UTC()
		br.Status = domainRequest.StatusApproved
		br.ProcessedBy = &in.AdminID
		br.ProcessedAt = &now
		if err := r.Requests.Save(ctx, br); err != nil {
			return err
		}

		a.Status = domainAsset.StatusInUse
		if err := r.Assets.Save(ctx, a); err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "BorrowRequest",
			EntityID:    br.RequestID,
			Action:      audit.ActionBorrowApproved,
			OldValue:    string(domainRequest.StatusPending),
			NewValue:    string(domainRequest.StatusApproved),
			PerformedBy: in.AdminID,
			PerformedAt: now,
		}); err != nil {
			return err
		}

		u.notify(ctx, r, br.RequesterID,
			fmt.Sprintf("Your borrow request %s for asset %q has been APPROVED.", br.RequestID, a.Name))

		dto = toDTO(br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Decline transitions PENDING -> DECLINED. The reason is free text, stored
// verbatim; it carries no semantic weight. The asset is untouched.
func (u *Usecase) Decline(ctx context.Context, in DeclineInput) (*RequestDTO, error) {
	if len(in.RequestID) != 32 || len(in.AdminID) != 32 || len(in.Reason) > 2000 {
		return nil, errInvalidInput
	}

	var dto *RequestDTO
	err := u.uow.WithinRequestTx(ctx, in.RequestID, func(r uow.Repos, br *domainRequest.BorrowRequest) error {
		if br.Status != domainRequest.StatusPending {
			return domainRequest.ErrInvalidTransition
		}

		now := time.Now().UTC()
		br.Status = domainRequest.StatusDeclined
		br.ProcessedBy = &in.AdminID
		br.ProcessedAt = &now
		br.DeclineReason = in.Reason
		if err := r.Requests.Save(ctx, br); err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "BorrowRequest",
			EntityID:    br.RequestID,
			Action:      audit.ActionBorrowDeclined,
			OldValue:    string(domainRequest.StatusPending),
			NewValue:    string(domainRequest.StatusDeclined),
			PerformedBy: in.AdminID,
			PerformedAt: now,
		}); err != nil {
			return err
		}

		msg := fmt.Sprintf("Your borrow request %s has been DECLINED.", br.RequestID)
		if in.Reason != "" {
			msg += " Reason: " + in.Reason
		}
		u.notify(ctx, r, br.RequesterID, msg)

		dto = toDTO(br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Cancel transitions PENDING -> CANCELLED. Only the requester may cancel, and
// the ownership check runs before the status check.
func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*RequestDTO, error) {
	if len(in.RequestID) != 32 || len(in.RequesterID) != 32 {
		return nil, errInvalidInput
	}

	var dto *RequestDTO
	err := u.uow.WithinRequestTx(ctx, in.RequestID, func(r uow.Repos, br *domainRequest.BorrowRequest) error {
		if br.RequesterID != in.RequesterID {
			return domainRequest.ErrUnauthorized
		}
		if br.Status != domainRequest.StatusPending {
			return domainRequest.ErrInvalidTransition
		}

		now := time.Now().UTC()
		br.Status = domainRequest.StatusCancelled
		br.ProcessedAt = &now
		if err := r.Requests.Save(ctx, br); err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "BorrowRequest",
			EntityID:    br.RequestID,
			Action:      audit.ActionBorrowCancelled,
			OldValue:    string(domainRequest.StatusPending),
			NewValue:    string(domainRequest.StatusCancelled),
			PerformedBy: in.RequesterID,
			PerformedAt: now,
		}); err != nil {
			return err
		}

		dto = toDTO(br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Complete transitions APPROVED -> COMPLETE and releases the asset back to
// AVAILABLE.
func (u *Usecase) Complete(ctx context.Context, requestID string) (*RequestDTO, error) {
	if len(requestID) != 32 {
		return nil, errInvalidInput
	}

	var dto *RequestDTO
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, br *domainRequest.BorrowRequest) error {
		if br.Status != domainRequest.StatusApproved {
			return domainRequest.ErrInvalidTransition
		}

		br.Status = domainRequest.StatusComplete
		if err := r.Requests.Save(ctx, br); err != nil {
			return err
		}

		a, err := r.Assets.GetByAssetIDForUpdate(ctx, br.AssetID)
		if err != nil {
			return domainAsset.ErrNotFound
		}
		a.Status = domainAsset.StatusAvailable
		if err := r.Assets.Save(ctx, a); err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "BorrowRequest",
			EntityID:    br.RequestID,
			Action:      audit.ActionBorrowCompleted,
			OldValue:    string(domainRequest.StatusApproved),
			NewValue:    string(domainRequest.StatusComplete),
			PerformedBy: br.RequesterID,
			PerformedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		dto = toDTO(br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListPending is the admin queue, oldest first.
func (u *Usecase) ListPending(ctx context.Context) ([]RequestDTO, error) {
	rows, err := u.requests.ListByStatus(ctx, domainRequest.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListByRequester returns the requester's full history, any status.
func (u *Usecase) ListByRequester(ctx context.Context, requesterID string) ([]RequestDTO, error) {
	if len(requesterID) != 32 {
		return nil, errInvalidInput
	}
	rows, err := u.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// Get returns one request by public id.
func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	br, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, domainRequest.ErrNotFound
	}
	return toDTO(br), nil
}

func toDTOs(rows []domainRequest.BorrowRequest) []RequestDTO {
	out := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}

// notify writes an in-app notification on the workflow's transaction. Failure
// is logged, never fatal: a lost notification must not roll back a transition.
func (u *Usecase) notify(ctx context.Context, r uow.Repos, recipientID, msg string) {
	n := &notification.Notification{
		RecipientID: recipientID,
		Message:     msg,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.Notifications.Create(ctx, n); err != nil {
		u.log.Warn("notification create failed",
			zap.String("recipient_id", recipientID), zap.Error(err))
	}
}
