package codecommit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/relsync/internal/execshell"
)

const (
	codecommitServiceConstant               = "codecommit"
	createPullRequestSubcommandConstant     = "create-pull-request"
	titleFlagConstant                       = "--title"
	descriptionFlagConstant                 = "--description"
	clientRequestTokenFlagConstant          = "--client-request-token"
	targetsFlagConstant                     = "--targets"
	outputFlagConstant                      = "--output"
	outputFormatJSONConstant                = "json"
	targetsArgumentTemplateConstant         = "repositoryName=%s,sourceReference=%s,destinationReference=%s"
	repositoryFieldNameConstant             = "repository_name"
	titleFieldNameConstant                  = "title"
	sourceBranchFieldNameConstant           = "source_branch"
	destinationBranchFieldNameConstant      = "destination_branch"
	requiredValueMessageConstant            = "value required"
	executorNotConfiguredMessageConstant    = "codecommit cli executor not configured"
	operationErrorMessageTemplateConstant   = "%s operation failed"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant   = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant       = "%s: %s"
	createPullRequestOperationNameConstant  = OperationName("CreatePullRequest")
)

// OperationName describes a named CodeCommit CLI workflow supported by the client.
type OperationName string

// PullRequest represents minimal pull request details returned by the CodeCommit CLI.
type PullRequest struct {
	Identifier string
	Title      string
	Status     string
}

// CreatePullRequestOptions configures CreatePullRequest invocations.
type CreatePullRequestOptions struct {
	RepositoryName     string
	Title              string
	Description        string
	SourceBranch       string
	DestinationBranch  string
	ClientRequestToken string
}

// AWSCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type AWSCommandExecutor interface {
	ExecuteAWSCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates AWS CodeCommit CLI invocations through execshell.
type Client struct {
	executor AWSCommandExecutor
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for CodeCommit CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs a CodeCommit CLI client.
func NewClient(executor AWSCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CreatePullRequest opens a pull request using aws codecommit create-pull-request.
func (client *Client) CreatePullRequest(executionContext context.Context, options CreatePullRequestOptions) (PullRequest, error) {
	repositoryName := strings.TrimSpace(options.RepositoryName)
	if len(repositoryName) == 0 {
		return PullRequest{}, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	if len(strings.TrimSpace(options.Title)) == 0 {
		return PullRequest{}, InvalidInputError{FieldName: titleFieldNameConstant, Message: requiredValueMessageConstant}
	}

	sourceBranch := strings.TrimSpace(options.SourceBranch)
	if len(sourceBranch) == 0 {
		return PullRequest{}, InvalidInputError{FieldName: sourceBranchFieldNameConstant, Message: requiredValueMessageConstant}
	}

	destinationBranch := strings.TrimSpace(options.DestinationBranch)
	if len(destinationBranch) == 0 {
		return PullRequest{}, InvalidInputError{FieldName: destinationBranchFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandArguments := []string{
		codecommitServiceConstant,
		createPullRequestSubcommandConstant,
		titleFlagConstant,
		options.Title,
		descriptionFlagConstant,
		options.Description,
		targetsFlagConstant,
		fmt.Sprintf(targetsArgumentTemplateConstant, repositoryName, sourceBranch, destinationBranch),
		outputFlagConstant,
		outputFormatJSONConstant,
	}

	clientRequestToken := strings.TrimSpace(options.ClientRequestToken)
	if len(clientRequestToken) > 0 {
		commandArguments = append(commandArguments, clientRequestTokenFlagConstant, clientRequestToken)
	}

	commandDetails := execshell.CommandDetails{Arguments: commandArguments}

	executionResult, executionError := client.executor.ExecuteAWSCLI(executionContext, commandDetails)
	if executionError != nil {
		return PullRequest{}, OperationError{Operation: createPullRequestOperationNameConstant, Cause: executionError}
	}

	var response struct {
		PullRequest struct {
			PullRequestID     string `json:"pullRequestId"`
			Title             string `json:"title"`
			PullRequestStatus string `json:"pullRequestStatus"`
		} `json:"pullRequest"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return PullRequest{}, ResponseDecodingError{Operation: createPullRequestOperationNameConstant, Cause: decodingError}
	}

	return PullRequest{
		Identifier: response.PullRequest.PullRequestID,
		Title:      response.PullRequest.Title,
		Status:     response.PullRequest.PullRequestStatus,
	}, nil
}
