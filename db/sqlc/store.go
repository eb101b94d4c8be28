// db/store.go

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
type Store struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) *Store {
	return &Store{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// execTx executes a function within a database transaction.
func (s *Store) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

////////////////////////////////////////////////////////////////////////
// Transaction: SeedSkillsTx
////////////////////////////////////////////////////////////////////////

// SeedSkill is one catalog entry to seed, with the aliases that should
// resolve to it (e.g. "js" and "ecmascript" for "JavaScript").
type SeedSkill struct {
	Skill   UpsertSkillParams
	Aliases []string
}

// SeedSkillsTxParams contains the parameters for the SeedSkillsTx transaction.
type SeedSkillsTxParams struct {
	Skills []SeedSkill
}

// SeedSkillsTxResult contains the result of the SeedSkillsTx transaction.
type SeedSkillsTxResult struct {
	Skills  []Skill
	Aliases int
}

// SeedSkillsTx upserts every seed skill by name and links its aliases, all or nothing.
// Running it twice with the same input leaves the catalog unchanged.
func (s *Store) SeedSkillsTx(ctx context.Context, arg SeedSkillsTxParams) (SeedSkillsTxResult, error) {
	var result SeedSkillsTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		for _, seed := range arg.Skills {
			// Step 1: Insert or refresh the skill itself.
			skill, err := q.UpsertSkill(ctx, seed.Skill)
			if err != nil {
				return fmt.Errorf("failed to upsert skill '%s': %w", seed.Skill.Name, err)
			}
			result.Skills = append(result.Skills, skill)

			// Step 2: Point every alias at it. The canonical name is an alias of itself
			// so the normalizer always finds the catalog spelling.
			aliases := append([]string{skill.Name}, seed.Aliases...)
			for _, alias := range aliases {
				err := q.CreateSkillAlias(ctx, CreateSkillAliasParams{
					AliasName: alias,
					SkillID:   skill.ID,
				})
				if err != nil {
					return fmt.Errorf("failed to link alias '%s' to skill '%s': %w", alias, skill.Name, err)
				}
				result.Aliases++
			}
		}

		return nil
	})

	return result, err
}
