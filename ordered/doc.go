/*
Package ordered declares the contract shared by the dynamic ordered integer
maps of this module.

An ordered map associates values with unique integer keys and answers
predecessor and successor queries: the largest key not greater than, and the
smallest key not less than, a queried key. A key that is contained counts as
its own predecessor and successor. Two interchangeable backends implement
the contract, a B-tree over an unbounded key universe (package
ordered/btree) and a bit-vector bucket structure over a bounded one
(package ordered/rangemark).

Inserting a key that is already contained is a violation of the contract.
Backends are free to corrupt their state in that case; they do not signal it
through a query result.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ordered
