// Package flow holds the fixed Pre-KTAS retriage pipeline composition.
//
// # Overview
//
// The diagram depicts the control flow of an external multi-stage triage
// classification service: streaming input feeds a retriage judge, the judge
// routes to one of three stage branches (stage 2, 3, 4), each branch either
// asks a follow-up question or classifies at its stage, classified branches
// converge on the final KTAS level, and follow-up answers re-enter the
// pipeline as new input. None of that logic runs here — the composition is
// a static depiction, declared once at explicit coordinates.
//
// [Compose] returns the scene; there is no layout algorithm. Positions are
// hand-tuned so the three stage branches occupy disjoint horizontal bands
// ([BranchBounds]) and their fan-out paths never collide: the center branch
// drops straight down from the judge while the outer branches take smooth
// one-bend curves.
package flow
