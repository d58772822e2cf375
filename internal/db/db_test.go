package db_test

import (
	"context"
	"database/sql"

	"solpay/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateTable(&Test{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Create", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()
		})

		It("should insert the record", func() {
			err := testDB.Create(context.Background(), &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateIgnore", func() {
		When("the row is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" .*ON CONFLICT \("username"\) DO NOTHING RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should report a write", func() {
				created, err := testDB.CreateIgnore(context.Background(), &Test{ID: 1, Username: "Alice"}, "username")
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the unique constraint discards the row", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" .*ON CONFLICT \("username"\) DO NOTHING RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()
			})

			It("should report no write without error", func() {
				created, err := testDB.CreateIgnore(context.Background(), &Test{ID: 1, Username: "Alice"}, "username")
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "tests"\."username" = \$1 ORDER BY id DESC.*`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(2, "Alice").
					AddRow(1, "Alice"))
		})

		It("should return the ordered matches", func() {
			var results []Test
			err := testDB.FindWhere(context.Background(), &results, "id DESC", map[string]any{"username": "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ID).To(Equal(uint(2)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateWhere", func() {
		When("rows match the condition", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE "tests"\."username" = \$2`).
					WithArgs("Bob", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			})

			It("should report the number of rows touched", func() {
				count, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Alice"},
					map[string]any{"username": "Bob"})
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				_, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Alice"},
					map[string]any{"username": "Bob"})
				Expect(err).To(MatchError(ContainSubstring("updating records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
