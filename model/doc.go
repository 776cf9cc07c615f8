// Package model provides the intermediate representation for the page
// ordering engine.
//
// This package defines the user-facing data structures that represent a
// batch of scanned pages and the evidence collected about them. OCR
// extraction produces these types, and the ordering engine consumes them,
// making them the primary API for inspecting ordering results.
//
// # Pages and Candidates
//
// A [Page] is one scanned unit, identified by its position in the original
// scan batch. Each page carries zero or more [Candidate] values: numeral
// strings the OCR collaborator detected on the page, with their source
// region and confidence scores.
//
// # Decisions
//
// The ordering engine produces one [Decision] per page: the position the
// page's evidence argues for, the confidence in that placement, and a
// human-readable reasoning trail describing every filter, clamp, and
// reassignment applied along the way.
//
// # Geometry
//
// [BBox] and [Point] support region classification of OCR detections.
// Coordinates are in image pixels with the origin at the top-left corner.
package model
