// Package aws loads and verifies the AWS credentials used to connect a cloud
// provider to a team.
//
// Credentials come either from a named profile in the shared AWS
// configuration files or from keys typed by the user. Before they are sent
// to the API they are checked with a ListBuckets call, which every valid key
// pair can issue.
package aws
