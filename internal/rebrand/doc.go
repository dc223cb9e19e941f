// SPDX-License-Identifier: MPL-2.0

// Package rebrand is the identity-propagation engine. Given a validated
// configuration it rewrites the project manifest, the Android application
// manifest, the Gradle build script, the string-resource table, the iOS
// project descriptor and the compile-time env constant, and relocates the
// Android entry-point source file to the directory implied by the new
// package identifier.
//
// Every artifact is treated as opaque text: patchers locate regions of
// interest by pattern and splice replacements in, so bytes outside a
// matched region are untouched. Patchers never write to disk directly;
// they stage edits into a Plan, and the Plan commits all writes only after
// every edit has been computed. A failure during staging therefore leaves
// the project byte-identical to its prior state.
package rebrand
