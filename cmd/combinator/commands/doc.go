// Package commands defines the combinator CLI.
//
// Commands
//
//   - permutations run|count             Permute k words drawn from all groups
//     (aliases p, perm)
//   - multi-cartesian-product run|count  Pick one word per group, in order
//     (aliases mcp, product, cart)
//   - fingerprint                        Print the master fingerprint for a passphrase
//   - xpub                               Print the m/84'/0'/0' account xpub
//   - reveal                             Open a result file sealed with --seal-key
//
// # Configuration
//
// Four settings may also come from the environment: --seed from SEED,
// --fingerprint from FINGERPRINT, --words from WORDS and --seal-key from
// SEAL_KEY. Flags win over the environment. No other variable is read. Word groups are JSON or
// YAML lists of lists, e.g. [["benefit","wife"],["soccer"]].
package commands
