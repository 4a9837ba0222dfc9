// Package templates holds the HTML email components, written as
// templ.ComponentFunc values, and Render, which turns a component into a string.
package templates
