/*
Package observability provides hooks for monitoring an interpreter instance.

It includes Prometheus metrics for processed lines and tokens, structured
logging of aborted lines, and a combinator that fans one event out to
several hook sets.
*/
package observability
