// Package config loads the tunables of the lensing operators.
//
// Sources, lowest precedence first: built-in defaults (Default), an optional
// YAML, TOML or JSON file, LENSING_* environment variables (a key such as
// grid.max_evaluation_grid_size maps to LENSING_GRID_MAX_EVALUATION_GRID_SIZE)
// and finally command-line flags registered with RegisterFlags.
//
// The resulting Config is a plain value passed explicitly to the code that
// needs it; there is no package-level configuration state.
package config
