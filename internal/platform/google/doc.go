// Package google wraps the Google Cloud and Firebase management REST APIs
// used by provisioning: Cloud Resource Manager (project creation), Firebase
// Management (platform activation, web apps), Service Usage (API
// activation), Firestore (database creation) and Firebase Rules (security
// ruleset publishing).
//
// Client is the narrow interface consumed by the provisioning pipeline.
// RealClient implements it over an OAuth2-authorized HTTP client; MockClient
// provides per-method function hooks for tests.
package google
