// Package api is the single chokepoint for all Applyline backend calls.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering every
//     backend operation: Login/Register, GetProfile/UpdateProfile,
//     GetApplicationHistory, SendBatchApplications and PersonalizeLetter.
//  2. A concrete HTTP implementation (see HTTPClient) that builds URLs from a
//     fixed base, injects the bearer credential whenever a token is stored,
//     serializes JSON bodies, and normalizes every failure into *Error.
//
// # Error Handling
//
// All failures surface as *Error carrying the backend message (or a generic
// fallback) and the HTTP status when a response was received. Transport-level
// conditions can additionally be matched with errors.Is against the sentinels
// ErrNetwork, ErrTimeout and ErrDecode.
//
// The gateway never recovers errors itself and never touches session or
// notification state; callers decide how to react.
package api
