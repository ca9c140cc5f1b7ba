// Package salesforce provides clients for the Salesforce REST, Bulk 2.0,
// Tooling, and Metadata APIs. All clients share one retrying HTTP
// transport and one structured error model; they hold the access token
// internally and never expose it through errors or logs.
package salesforce
