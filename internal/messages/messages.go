package messages

const (
	OperationWasSuccessful = "operation was successful"
	NotFound               = "resource not found"
	SomethingWentWrong     = "something went wrong"
	InvalidRequest         = "invalid request"

	StatsFetched          = "Stats fetched successfully"
	StatsNotFound         = "User stats not found"
	StatsGenerated        = "Stats generated successfully"
	StatsAlreadyExists    = "User stats already exists"
	InvalidGithubUsername = "Invalid GitHub username"
	ErrorGeneratingStats  = "Error generating stats"
	AllUsersFetched       = "All users fetched successfully"
	TopUsersFetched       = "Top users fetched successfully"
	SupportersFetched     = "Supporters fetched successfully"

	WebhookActive             = "Webhook endpoint active"
	WebhookVerificationFailed = "Webhook verification failed"
	WebhookProcessingFailed   = "Webhook processing failed"
)
