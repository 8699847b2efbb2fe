// Package io reads and writes workflow step trees as JSON or YAML.
//
// # Format
//
// A document wraps the step tree with the variant's display metadata:
//
//	variant: admin
//	label: Admin Workflow
//	subtitle: Visualizing the Administrator's Management & Approval Process
//	steps:
//	  - id: A1
//	    title: Review Employer Registration
//	    actor: Admin
//	    description: ...
//	  - id: A3
//	    ...
//	    branches:
//	      - id: A3a
//	        ...
//	    isFinal: true
//
// Field names match the JSON form. Actors are written by name ("User",
// "Admin", "System") and read case-insensitively. A bare list of steps is
// accepted on input as a document with only steps.
//
// Documents are not validated beyond decoding: duplicate IDs or odd tree
// shapes are rendered as given.
//
// # Usage
//
//	doc := io.FromEntry(entry)
//	err := io.WriteYAML(doc, os.Stdout)
//
//	doc, err := io.Import("custom.yaml")
package io
