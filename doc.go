// Package goavl implement an in-memory sorted index of {key,value}
// entries and necessary tools and libraries.
//
// api:
//
// Interface specification to access goavl datastructures.
//
// avl:
//
// A weight augmented version of AVL tree for sorting and retrieving
// {key,value} entries. Index resides entirely in memory. Subtree
// weights double up as order statistics, so entries can be fetched
// by rank as well as by key.
//
// dict:
//
// Sorted index on top of golang map, reference implementation to
// validate avl.
//
// lib:
//
// Convenience functions that can be used by other packages. Package
// shall not import packages other than golang's standard packages.
package goavl
