// Package statusmap models the status-code-to-area mapping table and the
// resolution of a raw multi-token status string into a single effective mapping.
//
// A manufacturing order carries a raw status string of whitespace-separated
// status codes (for example "REL PRT PCNF"). Each active mapping row binds one
// code to a pipeline area with a sort order expressing how far along the
// pipeline that code is. Resolution picks the most advanced recognized code and
// its area; unrecognized codes are ignored.
package statusmap
