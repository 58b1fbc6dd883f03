package commands

import (
	"context"

	"stayhub/internal/domain/message"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID
	Body        string
}

type MessageCommands interface {
	Send(ctx context.Context, senderID uuid.UUID, req SendMessageRequest) (*message.Message, error)
	MarkRead(ctx context.Context, messageID, userID uuid.UUID) (*message.Message, error)
}

type messageCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessageCommands(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageCommandsImpl{uow: uow, clock: clk}
}

func (uc *messageCommandsImpl) Send(ctx context.Context, senderID uuid.UUID, req SendMessageRequest) (*message.Message, error) {
	m, err := message.NewMessage(senderID, req.RecipientID, req.Body, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	recipient, err := uc.uow.CommandReads().UserByID(ctx, req.RecipientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, message.ErrRecipientNotFound
		}
		return nil, err
	}
	if !recipient.IsActive {
		return nil, message.ErrRecipientNotFound
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Messages().Create(ctx, tx.DB(), m); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return message.ErrRecipientNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *messageCommandsImpl) MarkRead(ctx context.Context, messageID, userID uuid.UUID) (*message.Message, error) {
	var read *message.Message
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Messages().FindByID(ctx, tx.DB(), messageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return message.ErrMessageNotFound
			}
			return err
		}
		if !m.IsParty(userID) {
			return message.ErrMessageNotFound
		}

		if err := m.MarkRead(userID); err != nil {
			return err
		}
		if err := tx.Messages().MarkRead(ctx, tx.DB(), m.ID()); err != nil {
			return err
		}
		read = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return read, nil
}
