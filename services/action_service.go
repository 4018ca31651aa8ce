package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"pulse_server/models"
	"pulse_server/utils"
)

// DefaultJournalUser keys journal entries for the single demo account
const DefaultJournalUser = "me"

// ActionService is the optional swipe journal: decisions are pure caller
// bookkeeping and never influence the deck, but they can be recorded for
// telemetry when SWIPE_LOG_TABLE is configured. Disabled it is a no-op.
type ActionService struct {
	Dynamo *DynamoService
	Table  string
}

// Enabled reports whether the journal has a backing table
func (as *ActionService) Enabled() bool {
	return as.Dynamo != nil && as.Table != ""
}

// RecordSwipe stores one decision. Failures are logged and swallowed; the
// journal never blocks a swipe.
func (as *ActionService) RecordSwipe(ctx context.Context, profileID, decision string) {
	if !as.Enabled() {
		return
	}
	action := models.SwipeAction{
		UserID:    DefaultJournalUser,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		ProfileID: profileID,
		Decision:  decision,
	}
	if err := as.Dynamo.PutItem(ctx, as.Table, action); err != nil {
		log.Printf("❌ Failed to record swipe for profile %s: %v", profileID, err)
		return
	}
	log.Printf("📝 Recorded %s on profile %s", decision, profileID)
}

// RecentSwipes returns the latest recorded decisions, newest first
func (as *ActionService) RecentSwipes(ctx context.Context, limit int32) ([]models.SwipeAction, error) {
	if !as.Enabled() {
		return []models.SwipeAction{}, nil
	}

	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: DefaultJournalUser},
	}
	items, err := as.Dynamo.QueryItems(ctx, as.Table, keyCondition, expressionValues, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipe journal: %w", err)
	}

	actions := make([]models.SwipeAction, 0, len(items))
	for _, item := range items {
		actions = append(actions, models.SwipeAction{
			UserID:    utils.ExtractString(item, "userId"),
			CreatedAt: utils.ExtractString(item, "createdAt"),
			ProfileID: utils.ExtractString(item, "profileId"),
			Decision:  utils.ExtractString(item, "decision"),
		})
	}
	return actions, nil
}
