package models

// SwipeAction records one swipe decision for the optional journal
type SwipeAction struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	ProfileID string `dynamodbav:"profileId" json:"profileId"`
	Decision  string `dynamodbav:"decision" json:"decision"`
}
