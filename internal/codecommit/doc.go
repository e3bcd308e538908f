// Package codecommit wraps the AWS CodeCommit command-line interface.
//
// The client builds create-pull-request invocations and decodes their JSON
// responses, delegating process execution to execshell so tests can substitute
// recorded executors.
package codecommit
