// Package extract drives batch extraction: it loads per-day jobs, runs the
// project parse / visibility filter / window query pipeline for each one,
// and aggregates the results into per-day trim instruction artifacts.
package extract
