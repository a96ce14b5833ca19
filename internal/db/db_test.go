package db_test

import (
	"context"
	"database/sql"
	"vearn/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	Code     string `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
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
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Upsert", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests" .*ON CONFLICT \("code"\) DO UPDATE SET "username"="excluded"\."username"`).
					WithArgs("a1", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should write the record", func() {
				err := testDB.Upsert(ctx, "code", &Test{Code: "a1", Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return a wrapped error", func() {
				err := testDB.Upsert(ctx, "code", &Test{Code: "a1", Username: "Alice"})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring(`upsert on "code"`)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."code" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"code", "username"}).
						AddRow("a1", "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Code).To(Equal("a1"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."code" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\) ORDER BY code desc`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"code", "username"}).
						AddRow("b2", "Bob").
						AddRow("a1", "Alice"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", []string{"Alice", "Bob"}, "code desc", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Bob"))
				Expect(results[1].Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", "", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
