// Package nbot defines the nanobot fleet's static data: bot identity,
// position, seed allocation, and a FIFO queue of deferred operations.
//
// Operations are represented as an argument-carrying Op value, not a
// closure over mutable bot state — enqueuing records an intent (the Kind
// plus its Diff/seed-count arguments); the engine package is what pops and
// executes one Op per bot per tick, since executing an Op requires mutating
// shared grid and fleet state that a Bot has no reference to.
package nbot
