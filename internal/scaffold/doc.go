// Package scaffold writes a new bundle project from the embedded template
// tree under scaffolds/bundle. Every template is rendered in memory before
// the first file is written, so a failure leaves the output directory
// untouched. File names ending in .tmpl lose the suffix and a leading
// "dot_" path element becomes ".".
package scaffold
