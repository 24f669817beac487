/*
Package history keeps interactive shell history.

Buffer is the in-memory list for one session. A Store loads it when the
shell starts and saves it when the shell exits. Two stores are provided:

  - FileStore writes ~/.smol_<prompt>_history, one entry per line.
  - RedisStore keeps the entries in a Redis list.

Both keep only the most recent DefaultLimit entries.
*/
package history
