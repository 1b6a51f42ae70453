// Package parser reads source worksheets through excelize.
package parser
